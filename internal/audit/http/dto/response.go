// Package dto provides data transfer objects for the audit HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
)

// ActorResponse is the API projection of an audit actor.
type ActorResponse struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name,omitempty"`
}

// EventResponse is the API projection of an audit event.
type EventResponse struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Actor         ActorResponse  `json:"actor"`
	ReferenceType string         `json:"reference_type"`
	ReferenceID   string         `json:"reference_id"`
	Status        string         `json:"status"`
	Payload       map[string]any `json:"payload,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// EventListResponse wraps a page of audit events.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// MapEventsToListResponse converts domain audit events to the list projection.
func MapEventsToListResponse(events []*auditDomain.Event, offset, limit int) EventListResponse {
	response := EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
		Offset: offset,
		Limit:  limit,
	}

	for _, event := range events {
		actor := ActorResponse{
			Type:        string(event.Actor.Type),
			DisplayName: event.Actor.DisplayName,
		}
		if event.Actor.ID != uuid.Nil {
			actor.ID = event.Actor.ID.String()
		}

		response.Events = append(response.Events, EventResponse{
			ID:            event.ID.String(),
			Type:          event.Type,
			Actor:         actor,
			ReferenceType: event.ReferenceType,
			ReferenceID:   event.ReferenceID.String(),
			Status:        string(event.Status),
			Payload:       event.Payload,
			CreatedAt:     event.CreatedAt,
		})
	}

	return response
}
