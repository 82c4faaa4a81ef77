// Package domain defines the transactional outbox event model used to notify
// dependent components (token-issuing gateways) after credential mutations.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus is the delivery state of an outbox event.
type OutboxEventStatus string

const (
	// OutboxEventStatusPending marks an event waiting to be delivered.
	OutboxEventStatusPending OutboxEventStatus = "pending"

	// OutboxEventStatusProcessed marks an event delivered successfully.
	OutboxEventStatusProcessed OutboxEventStatus = "processed"

	// OutboxEventStatusFailed marks an event that exhausted its delivery retries.
	OutboxEventStatusFailed OutboxEventStatus = "failed"
)

// Outbox event types published by the credential lifecycle.
const (
	// EventApplicationSecretsChanged signals that an application's client
	// secrets changed and cached client state must be reloaded.
	EventApplicationSecretsChanged = "application.secrets_changed"
)

// OutboxEvent is a pending notification persisted in the same transaction as
// the aggregate mutation it describes.
type OutboxEvent struct {
	ID            uuid.UUID
	EventType     string
	AggregateType string
	AggregateID   uuid.UUID
	Payload       string
	Status        OutboxEventStatus
	Retries       int
	LastError     *string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// NewOutboxEvent creates a pending outbox event with a fresh UUIDv7 identifier.
func NewOutboxEvent(eventType, aggregateType string, aggregateID uuid.UUID, payload string) *OutboxEvent {
	return &OutboxEvent{
		ID:            uuid.Must(uuid.NewV7()),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       payload,
		Status:        OutboxEventStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}
