// Package domain defines audit domain models.
// Every mutating or enrolling credential operation produces exactly one audit
// event, success or failure.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the terminal outcome recorded for an audited operation.
type Status string

const (
	// StatusSuccess marks an operation that completed and persisted.
	StatusSuccess Status = "SUCCESS"

	// StatusFailure marks an operation rejected by validation or persistence.
	StatusFailure Status = "FAILURE"
)

// Audit event types for the credential lifecycle.
const (
	EventClientSecretCreated = "client_secret.created"
	EventClientSecretRenewed = "client_secret.renewed"
	EventClientSecretDeleted = "client_secret.deleted"
	EventCertificateEnrolled = "certificate.enrolled"
	EventCertificateDeleted  = "certificate.deleted"
)

// ReferenceTypeDomain is the reference type for events scoped to a security domain.
const ReferenceTypeDomain = "DOMAIN"

// ActorType distinguishes human actors from system processes.
type ActorType string

const (
	// ActorTypeUser marks an operation performed by an administrator or end user.
	ActorTypeUser ActorType = "user"

	// ActorTypeSystem marks an operation performed by an internal process.
	ActorTypeSystem ActorType = "system"
)

// Actor identifies who performed an audited operation.
type Actor struct {
	ID          uuid.UUID
	Type        ActorType
	DisplayName string
}

// Event is a structured audit record for one terminal operation outcome.
type Event struct {
	ID            uuid.UUID
	Type          string
	Actor         Actor
	ReferenceType string
	ReferenceID   uuid.UUID
	Status        Status
	Payload       map[string]any
	CreatedAt     time.Time
}

// NewEvent builds an audit event with a fresh UUIDv7 identifier and timestamp.
// The payload parameter is optional and can be nil.
func NewEvent(
	eventType string,
	actor Actor,
	referenceType string,
	referenceID uuid.UUID,
	status Status,
	payload map[string]any,
) *Event {
	return &Event{
		ID:            uuid.Must(uuid.NewV7()),
		Type:          eventType,
		Actor:         actor,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		Status:        status,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
}
