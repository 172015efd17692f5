package domain

import (
	"bytes"
	"encoding/json"

	"karla-connector/pkg/apperror"
)

// WebhookEvent is the canonical record built from a verified Karla webhook.
type WebhookEvent struct {
	EventGroup  EventGroup             `json:"event_group"`
	Ref         *string                `json:"ref"`
	Source      *string                `json:"source"`
	TriggeredAt *string                `json:"triggered_at"`
	EventData   *EventData             `json:"event_data"`
	Context     map[string]interface{} `json:"context"`

	// SourceData is the raw verified body.
	SourceData json.RawMessage `json:"-"`
}

// ParseWebhookEvent decodes a verified payload. An empty body or invalid JSON
// yields REQ_001, a missing event_group yields REQ_002.
func ParseWebhookEvent(raw []byte) (*WebhookEvent, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperror.ErrInvalidPayload(nil)
	}

	var evt WebhookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return nil, apperror.ErrInvalidPayload(err)
	}
	if evt.EventGroup == "" {
		return nil, apperror.ErrMissingEventGroup()
	}

	evt.SourceData = append(json.RawMessage(nil), raw...)
	if evt.EventData == nil {
		evt.EventData = NewEventData()
	}
	return &evt, nil
}

// EventName returns the derived platform event name.
func (e *WebhookEvent) EventName() string {
	return e.EventGroup.EventName()
}

// OrderID returns context.order.external_id.
func (e *WebhookEvent) OrderID() (string, error) {
	return e.contextString("order", "external_id")
}

// CustomerID returns context.customer.external_id.
func (e *WebhookEvent) CustomerID() (string, error) {
	return e.contextString("customer", "external_id")
}

// MailRecipients returns {email: email} for a non-empty customer email, or
// an empty set.
func (e *WebhookEvent) MailRecipients() map[string]string {
	email, err := e.contextString("customer", "email")
	if err != nil || email == "" {
		return map[string]string{}
	}
	return map[string]string{email: email}
}

func (e *WebhookEvent) contextString(section, field string) (string, error) {
	obj, ok := e.Context[section].(map[string]interface{})
	if !ok {
		return "", apperror.ErrMissingRequiredField(section + "." + field)
	}
	v, ok := obj[field].(string)
	if !ok {
		return "", apperror.ErrMissingRequiredField(section + "." + field)
	}
	return v, nil
}

// Capability is the outcome of one fallible accessor.
type Capability struct {
	Value string
	Err   error
}

// OK reports whether the accessor produced a value.
func (c Capability) OK() bool {
	return c.Err == nil
}

// Capabilities is what a dispatched event can offer to platform consumers.
type Capabilities struct {
	OrderID        Capability
	CustomerID     Capability
	MailRecipients map[string]string
}

// Capabilities evaluates every accessor once.
func (e *WebhookEvent) Capabilities() Capabilities {
	orderID, orderErr := e.OrderID()
	customerID, customerErr := e.CustomerID()
	return Capabilities{
		OrderID:        Capability{Value: orderID, Err: orderErr},
		CustomerID:     Capability{Value: customerID, Err: customerErr},
		MailRecipients: e.MailRecipients(),
	}
}

// TemplateData exposes the event to mail and flow templates.
func (e *WebhookEvent) TemplateData() *EventData {
	data := NewEventData()
	data.Set("eventName", e.EventName())
	data.Set("eventGroup", string(e.EventGroup))
	data.Set("ref", stringOrNil(e.Ref))
	data.Set("source", stringOrNil(e.Source))
	data.Set("triggeredAt", stringOrNil(e.TriggeredAt))
	data.Set("eventData", e.EventData)

	caps := e.Capabilities()
	if caps.OrderID.OK() {
		data.Set("orderId", caps.OrderID.Value)
	}
	if caps.CustomerID.OK() {
		data.Set("customerId", caps.CustomerID.Value)
	}
	for email := range caps.MailRecipients {
		data.Set("customerEmail", email)
	}
	return data
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// DispatchedEvent is handed to the event dispatcher after a webhook is accepted.
type DispatchedEvent struct {
	Name         string
	Group        EventGroup
	Ref          *string
	Capabilities Capabilities
	Data         *EventData
}

// NewDispatchedEvent builds the dispatch record for an accepted webhook.
func NewDispatchedEvent(e *WebhookEvent) DispatchedEvent {
	return DispatchedEvent{
		Name:         e.EventName(),
		Group:        e.EventGroup,
		Ref:          e.Ref,
		Capabilities: e.Capabilities(),
		Data:         e.TemplateData(),
	}
}
