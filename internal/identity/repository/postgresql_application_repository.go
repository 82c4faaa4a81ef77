// Package repository implements identity persistence for PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
	"github.com/idforge/credentials/internal/identity/domain"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// PostgreSQLApplicationRepository handles application persistence for
// PostgreSQL. Secrets and secret settings live as JSONB documents on the
// application row, so the aggregate is always loaded and stored whole.
type PostgreSQLApplicationRepository struct {
	db *sql.DB
}

// NewPostgreSQLApplicationRepository creates a new PostgreSQLApplicationRepository.
func NewPostgreSQLApplicationRepository(db *sql.DB) *PostgreSQLApplicationRepository {
	return &PostgreSQLApplicationRepository{db: db}
}

// Get retrieves an application by ID.
func (r *PostgreSQLApplicationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, name, token_endpoint_auth_method, secrets, secret_settings, settings, created_at, updated_at
			  FROM applications
			  WHERE id = $1`

	var (
		application      domain.Application
		secretsJSON      []byte
		settingsListJSON []byte
		settingsJSON     []byte
	)

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&application.ID,
		&application.DomainID,
		&application.Name,
		&application.TokenEndpointAuthMethod,
		&secretsJSON,
		&settingsListJSON,
		&settingsJSON,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "application not found")
		}
		return nil, apperrors.Technical(err, "failed to get application")
	}

	if err := json.Unmarshal(secretsJSON, &application.Secrets); err != nil {
		return nil, apperrors.Technical(err, "failed to unmarshal application secrets")
	}
	if err := json.Unmarshal(settingsListJSON, &application.SecretSettings); err != nil {
		return nil, apperrors.Technical(err, "failed to unmarshal application secret settings")
	}
	if settingsJSON != nil {
		if err := json.Unmarshal(settingsJSON, &application.Settings); err != nil {
			return nil, apperrors.Technical(err, "failed to unmarshal application settings")
		}
	}

	return &application, nil
}

// Update persists the full application aggregate, replacing the stored secrets
// and settings documents.
func (r *PostgreSQLApplicationRepository) Update(ctx context.Context, application *domain.Application) error {
	querier := database.GetTx(ctx, r.db)

	if application.Secrets == nil {
		application.Secrets = []secretsDomain.ClientSecret{}
	}
	if application.SecretSettings == nil {
		application.SecretSettings = []secretsDomain.SecretSettings{}
	}

	secretsJSON, err := json.Marshal(application.Secrets)
	if err != nil {
		return apperrors.Technical(err, "failed to marshal application secrets")
	}
	settingsListJSON, err := json.Marshal(application.SecretSettings)
	if err != nil {
		return apperrors.Technical(err, "failed to marshal application secret settings")
	}
	var settingsJSON []byte
	if application.Settings != nil {
		settingsJSON, err = json.Marshal(application.Settings)
		if err != nil {
			return apperrors.Technical(err, "failed to marshal application settings")
		}
	}

	query := `UPDATE applications
			  SET name = $1, token_endpoint_auth_method = $2, secrets = $3, secret_settings = $4, settings = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		application.Name,
		application.TokenEndpointAuthMethod,
		secretsJSON,
		settingsListJSON,
		settingsJSON,
		application.ID,
	)
	if err != nil {
		return apperrors.Technical(err, "failed to update application")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Technical(err, "failed to get rows affected")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "application not found")
	}

	return nil
}
