package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idforge/credentials/internal/audit/domain"
)

var eventColumns = []string{
	"id", "event_type", "actor_id", "actor_type", "actor_display_name",
	"reference_type", "reference_id", "status", "payload", "created_at",
}

// TestPostgreSQLEventRepository_Create tests audit event insertion.
func TestPostgreSQLEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	repo := NewPostgreSQLEventRepository(db)
	actor := domain.Actor{
		ID:          uuid.Must(uuid.NewV7()),
		Type:        domain.ActorTypeUser,
		DisplayName: "alice",
	}
	event := domain.NewEvent(
		domain.EventClientSecretCreated,
		actor,
		domain.ReferenceTypeDomain,
		uuid.Must(uuid.NewV7()),
		domain.StatusSuccess,
		map[string]any{"secret_id": uuid.Must(uuid.NewV7()).String()},
	)

	mock.ExpectExec(`INSERT INTO audit_events`).
		WithArgs(
			event.ID,
			event.Type,
			event.Actor.ID,
			string(event.Actor.Type),
			event.Actor.DisplayName,
			string(event.ReferenceType),
			event.ReferenceID,
			string(event.Status),
			sqlmock.AnyArg(),
			event.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPostgreSQLEventRepository_List tests paginated, time-filtered retrieval.
func TestPostgreSQLEventRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		repo := NewPostgreSQLEventRepository(db)
		eventID := uuid.Must(uuid.NewV7())
		actorID := uuid.Must(uuid.NewV7())
		referenceID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery(`SELECT (.+) FROM audit_events`).
			WithArgs(0, 50, nil, nil).
			WillReturnRows(sqlmock.NewRows(eventColumns).AddRow(
				eventID.String(), domain.EventCertificateEnrolled,
				actorID.String(), string(domain.ActorTypeUser), "alice",
				string(domain.ReferenceTypeDomain), referenceID.String(),
				string(domain.StatusSuccess), []byte(`{"thumbprint":"ab12"}`), now,
			))

		events, err := repo.List(ctx, 0, 50, nil, nil)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, eventID, events[0].ID)
		assert.Equal(t, "alice", events[0].Actor.DisplayName)
		assert.Equal(t, domain.StatusSuccess, events[0].Status)
		assert.Equal(t, "ab12", events[0].Payload["thumbprint"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_TimeFiltered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		repo := NewPostgreSQLEventRepository(db)
		from := time.Now().UTC().Add(-time.Hour)
		to := time.Now().UTC()

		mock.ExpectQuery(`SELECT (.+) FROM audit_events`).
			WithArgs(10, 20, from, to).
			WillReturnRows(sqlmock.NewRows(eventColumns))

		events, err := repo.List(ctx, 10, 20, &from, &to)

		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
