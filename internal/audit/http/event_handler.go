// Package http provides HTTP handlers for audit event operations.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	"github.com/idforge/credentials/internal/audit/http/dto"
	"github.com/idforge/credentials/internal/httputil"
)

// EventLister reads audit events with pagination and optional time filters.
type EventLister interface {
	List(
		ctx context.Context,
		offset, limit int,
		createdAtFrom, createdAtTo *time.Time,
	) ([]*auditDomain.Event, error)
}

// EventHandler handles HTTP requests for audit event operations.
type EventHandler struct {
	events EventLister
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events EventLister, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		events: events,
		logger: logger,
	}
}

// ListHandler retrieves audit events with pagination support and optional
// time-based filtering.
// GET /v1/audit-events?offset=0&limit=50&created_at_from=...&created_at_to=...
// Returns 200 OK with events ordered by created_at descending (newest first).
// Timestamps are RFC3339 and both boundaries are inclusive.
func (h *EventHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	createdAtFrom, ok := h.parseTimeQuery(c, "created_at_from")
	if !ok {
		return
	}
	createdAtTo, ok := h.parseTimeQuery(c, "created_at_to")
	if !ok {
		return
	}

	if createdAtFrom != nil && createdAtTo != nil && createdAtFrom.After(*createdAtTo) {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("created_at_from must be before or equal to created_at_to"),
			h.logger)
		return
	}

	events, err := h.events.List(c.Request.Context(), offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEventsToListResponse(events, offset, limit))
}

// parseTimeQuery parses an optional RFC3339 query parameter, writing the error
// response itself when parsing fails.
func (h *EventHandler) parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid %s format: must be RFC3339 (e.g., 2026-02-01T00:00:00Z)", name),
			h.logger)
		return nil, false
	}

	utcTime := parsed.UTC()
	return &utcTime, true
}
