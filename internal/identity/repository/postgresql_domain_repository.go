package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
	"github.com/idforge/credentials/internal/identity/domain"
)

// PostgreSQLDomainRepository handles security domain persistence for PostgreSQL.
type PostgreSQLDomainRepository struct {
	db *sql.DB
}

// NewPostgreSQLDomainRepository creates a new PostgreSQLDomainRepository.
func NewPostgreSQLDomainRepository(db *sql.DB) *PostgreSQLDomainRepository {
	return &PostgreSQLDomainRepository{db: db}
}

// Get retrieves a security domain by ID.
func (r *PostgreSQLDomainRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, secret_expiration_settings, password_policy_id, created_at
			  FROM domains
			  WHERE id = $1`

	var (
		securityDomain domain.Domain
		expirationJSON []byte
	)

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&securityDomain.ID,
		&securityDomain.Name,
		&expirationJSON,
		&securityDomain.PasswordPolicyID,
		&securityDomain.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "domain not found")
		}
		return nil, apperrors.Technical(err, "failed to get domain")
	}

	if expirationJSON != nil {
		if err := json.Unmarshal(expirationJSON, &securityDomain.SecretExpirationSettings); err != nil {
			return nil, apperrors.Technical(err, "failed to unmarshal domain expiration settings")
		}
	}

	return &securityDomain, nil
}
