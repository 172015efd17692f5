package redis

import (
	"context"
	"fmt"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	go_json "github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.EventDispatcher = (*EventStream)(nil)

// EventStream appends accepted webhook events to a redis stream for the
// platform's flow and mail consumers.
type EventStream struct {
	client *goredis.Client
	stream string
	maxLen int64
}

// NewEventStream creates a dispatcher. maxLen <= 0 leaves the stream uncapped.
func NewEventStream(client *goredis.Client, stream string, maxLen int64) *EventStream {
	return &EventStream{client: client, stream: stream, maxLen: maxLen}
}

type streamCapability struct {
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type streamPayload struct {
	Name           string            `json:"name"`
	Group          string            `json:"group"`
	Ref            *string           `json:"ref"`
	OrderID        streamCapability  `json:"order_id"`
	CustomerID     streamCapability  `json:"customer_id"`
	MailRecipients map[string]string `json:"mail_recipients"`
	Data           *domain.EventData `json:"data"`
}

func toStreamCapability(c domain.Capability) streamCapability {
	if c.Err != nil {
		return streamCapability{Error: c.Err.Error()}
	}
	return streamCapability{Value: c.Value}
}

func (s *EventStream) Dispatch(ctx context.Context, evt domain.DispatchedEvent) error {
	payload, err := go_json.Marshal(streamPayload{
		Name:           evt.Name,
		Group:          string(evt.Group),
		Ref:            evt.Ref,
		OrderID:        toStreamCapability(evt.Capabilities.OrderID),
		CustomerID:     toStreamCapability(evt.Capabilities.CustomerID),
		MailRecipients: evt.Capabilities.MailRecipients,
		Data:           evt.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ref := ""
	if evt.Ref != nil {
		ref = *evt.Ref
	}

	args := &goredis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"name":    evt.Name,
			"group":   string(evt.Group),
			"ref":     ref,
			"payload": string(payload),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to append event to %s: %w", s.stream, err)
	}
	return nil
}
