package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idforge/credentials/internal/events/domain"
)

var outboxColumns = []string{
	"id", "event_type", "aggregate_type", "aggregate_id", "payload",
	"status", "retries", "last_error", "processed_at", "created_at",
}

// TestPostgreSQLOutboxRepository_Create tests outbox event insertion.
func TestPostgreSQLOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	repo := NewPostgreSQLOutboxRepository(db)
	event := domain.NewOutboxEvent(
		domain.EventApplicationSecretsChanged,
		"application",
		uuid.Must(uuid.NewV7()),
		`{"change":"created"}`,
	)

	mock.ExpectExec(`INSERT INTO outbox_events`).
		WithArgs(
			event.ID,
			event.EventType,
			event.AggregateType,
			event.AggregateID,
			event.Payload,
			string(event.Status),
			event.Retries,
			nil,
			nil,
			event.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPostgreSQLOutboxRepository_GetPendingEvents tests pending batch retrieval.
func TestPostgreSQLOutboxRepository_GetPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		repo := NewPostgreSQLOutboxRepository(db)
		eventID := uuid.Must(uuid.NewV7())
		aggregateID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery(`SELECT (.+) FROM outbox_events`).
			WithArgs(string(domain.OutboxEventStatusPending), 10).
			WillReturnRows(sqlmock.NewRows(outboxColumns).AddRow(
				eventID.String(), domain.EventApplicationSecretsChanged, "application",
				aggregateID.String(), `{"change":"created"}`,
				string(domain.OutboxEventStatusPending), 0, nil, nil, now,
			))

		events, err := repo.GetPendingEvents(ctx, 10)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, eventID, events[0].ID)
		assert.Equal(t, domain.OutboxEventStatusPending, events[0].Status)
		assert.Nil(t, events[0].LastError)
		assert.Nil(t, events[0].ProcessedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		repo := NewPostgreSQLOutboxRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM outbox_events`).
			WithArgs(string(domain.OutboxEventStatusPending), 10).
			WillReturnRows(sqlmock.NewRows(outboxColumns))

		events, err := repo.GetPendingEvents(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

// TestPostgreSQLOutboxRepository_Update tests delivery state persistence.
func TestPostgreSQLOutboxRepository_Update(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	repo := NewPostgreSQLOutboxRepository(db)
	event := domain.NewOutboxEvent(
		domain.EventApplicationSecretsChanged,
		"application",
		uuid.Must(uuid.NewV7()),
		`{}`,
	)
	now := time.Now().UTC()
	event.Status = domain.OutboxEventStatusProcessed
	event.ProcessedAt = &now

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs(string(event.Status), event.Retries, nil, event.ProcessedAt, event.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
