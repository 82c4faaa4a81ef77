// Package repository implements audit event persistence for PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/idforge/credentials/internal/audit/domain"
	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
)

// PostgreSQLEventRepository implements audit event persistence for PostgreSQL databases.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLEventRepository creates a new PostgreSQLEventRepository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{db: db}
}

// Create inserts a new audit event.
func (r *PostgreSQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit payload")
	}

	query := `INSERT INTO audit_events
			  (id, event_type, actor_id, actor_type, actor_display_name,
			   reference_type, reference_id, status, payload, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = querier.ExecContext(
		ctx,
		query,
		event.ID,
		event.Type,
		event.Actor.ID,
		event.Actor.Type,
		event.Actor.DisplayName,
		event.ReferenceType,
		event.ReferenceID,
		event.Status,
		payload,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Technical(err, "failed to create audit event")
	}
	return nil
}

// List retrieves audit events ordered by created_at descending (newest first)
// with pagination and optional time-based filtering. Both boundaries are
// inclusive; nil means no filter.
func (r *PostgreSQLEventRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, event_type, actor_id, actor_type, actor_display_name,
			  reference_type, reference_id, status, payload, created_at
			  FROM audit_events
			  WHERE ($3::timestamptz IS NULL OR created_at >= $3)
			  AND ($4::timestamptz IS NULL OR created_at <= $4)
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		return nil, apperrors.Technical(err, "failed to list audit events")
	}
	defer rows.Close() //nolint:errcheck

	var events []*domain.Event
	for rows.Next() {
		var event domain.Event
		var payload []byte

		err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.Actor.ID,
			&event.Actor.Type,
			&event.Actor.DisplayName,
			&event.ReferenceType,
			&event.ReferenceID,
			&event.Status,
			&payload,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Technical(err, "failed to scan audit event")
		}

		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &event.Payload); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal audit payload")
			}
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Technical(err, "failed to iterate audit events")
	}

	return events, nil
}
