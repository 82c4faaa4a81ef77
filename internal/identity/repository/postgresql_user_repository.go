package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
	"github.com/idforge/credentials/internal/identity/domain"
)

// PostgreSQLUserRepository handles end user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *PostgreSQLUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, username, created_at
			  FROM users
			  WHERE id = $1`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.DomainID,
		&user.Username,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, apperrors.Technical(err, "failed to get user")
	}

	return &user, nil
}
