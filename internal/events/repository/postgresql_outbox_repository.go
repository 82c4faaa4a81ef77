// Package repository implements outbox event persistence for PostgreSQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
	"github.com/idforge/credentials/internal/events/domain"
)

// PostgreSQLOutboxRepository handles outbox event persistence for PostgreSQL.
type PostgreSQLOutboxRepository struct {
	db *sql.DB
}

// NewPostgreSQLOutboxRepository creates a new PostgreSQLOutboxRepository.
func NewPostgreSQLOutboxRepository(db *sql.DB) *PostgreSQLOutboxRepository {
	return &PostgreSQLOutboxRepository{db: db}
}

// Create inserts a new outbox event, joining any transaction in the context so
// the event commits atomically with the aggregate mutation it describes.
func (r *PostgreSQLOutboxRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO outbox_events
			  (id, event_type, aggregate_type, aggregate_id, payload, status, retries, last_error, processed_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		event.ID,
		event.EventType,
		event.AggregateType,
		event.AggregateID,
		event.Payload,
		event.Status,
		event.Retries,
		event.LastError,
		event.ProcessedAt,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Technical(err, "failed to create outbox event")
	}
	return nil
}

// GetPendingEvents retrieves pending events in creation order, locking the rows
// so concurrent processors skip each other's batches.
func (r *PostgreSQLOutboxRepository) GetPendingEvents(
	ctx context.Context,
	limit int,
) ([]*domain.OutboxEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, event_type, aggregate_type, aggregate_id, payload, status, retries, last_error, processed_at, created_at
			  FROM outbox_events
			  WHERE status = $1
			  ORDER BY created_at ASC
			  LIMIT $2
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, domain.OutboxEventStatusPending, limit)
	if err != nil {
		return nil, apperrors.Technical(err, "failed to get pending outbox events")
	}
	defer rows.Close() //nolint:errcheck

	var events []*domain.OutboxEvent
	for rows.Next() {
		var event domain.OutboxEvent

		err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.AggregateType,
			&event.AggregateID,
			&event.Payload,
			&event.Status,
			&event.Retries,
			&event.LastError,
			&event.ProcessedAt,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Technical(err, "failed to scan outbox event")
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Technical(err, "failed to iterate outbox events")
	}

	return events, nil
}

// Update persists delivery state changes for an outbox event.
func (r *PostgreSQLOutboxRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = $1, retries = $2, last_error = $3, processed_at = $4
			  WHERE id = $5`

	_, err := querier.ExecContext(
		ctx,
		query,
		event.Status,
		event.Retries,
		event.LastError,
		event.ProcessedAt,
		event.ID,
	)
	if err != nil {
		return apperrors.Technical(err, "failed to update outbox event")
	}
	return nil
}
