// Package events publishes the notifications other systems (mailing, CRM)
// react to.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

type Type string

const (
	OrderStateChanged      Type = "order.state_changed"
	InstallmentReminder    Type = "installment.reminder"
	InstallmentDebitFailed Type = "installment.debit_failed"
	CertificateIssued      Type = "certificate.issued"
)

type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       Type           `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// New builds an event. The key orders the events of one aggregate on the broker.
func New(t Type, key string, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
