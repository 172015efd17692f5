package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParsedSignature is the decoded Karla-Signature header.
type ParsedSignature struct {
	Timestamp    int64
	SignatureHex string
}

// WebhookOutcome labels how a webhook request ended.
type WebhookOutcome string

const (
	WebhookOutcomeAccepted WebhookOutcome = "accepted"
	WebhookOutcomeIgnored  WebhookOutcome = "ignored"
)

// WebhookLog records one accepted webhook.
type WebhookLog struct {
	ID          uuid.UUID      `json:"id"`
	EventName   string         `json:"event_name"`
	EventGroup  EventGroup     `json:"event_group"`
	Ref         *string        `json:"ref,omitempty"`
	Source      *string        `json:"source,omitempty"`
	Outcome     WebhookOutcome `json:"outcome"`
	PayloadSize int            `json:"payload_size"`
	ReceivedAt  time.Time      `json:"received_at"`
}

// NewWebhookLog builds a log entry for an accepted event.
func NewWebhookLog(evt *WebhookEvent, outcome WebhookOutcome, receivedAt time.Time) *WebhookLog {
	return &WebhookLog{
		ID:          uuid.New(),
		EventName:   evt.EventName(),
		EventGroup:  evt.EventGroup,
		Ref:         evt.Ref,
		Source:      evt.Source,
		Outcome:     outcome,
		PayloadSize: len(evt.SourceData),
		ReceivedAt:  receivedAt,
	}
}
