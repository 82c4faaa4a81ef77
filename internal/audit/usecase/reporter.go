// Package usecase implements the audit sink consumed by the credential lifecycles.
package usecase

import (
	"context"
	"log/slog"

	"github.com/idforge/credentials/internal/audit/domain"
)

// EventRepository defines the interface for audit event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
}

// Reporter receives a structured audit record for every terminal outcome of a
// mutating or enrolling operation.
type Reporter interface {
	Report(ctx context.Context, event *domain.Event)
}

// reporter persists audit events. Failure to audit is logged and never
// propagated as a lifecycle error.
type reporter struct {
	eventRepo EventRepository
	logger    *slog.Logger
}

// Report persists the audit event, logging persistence failures.
func (r *reporter) Report(ctx context.Context, event *domain.Event) {
	if err := r.eventRepo.Create(ctx, event); err != nil {
		r.logger.Error("failed to record audit event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type),
			slog.String("status", string(event.Status)),
			slog.Any("error", err),
		)
	}
}

// NewReporter creates a Reporter backed by the given repository.
func NewReporter(eventRepo EventRepository, logger *slog.Logger) Reporter {
	return &reporter{
		eventRepo: eventRepo,
		logger:    logger,
	}
}
