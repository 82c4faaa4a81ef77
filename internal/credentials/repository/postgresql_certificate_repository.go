// Package repository implements certificate credential persistence for PostgreSQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/credentials/domain"
	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
)

// PostgreSQLCertificateRepository handles certificate credential persistence
// for PostgreSQL.
type PostgreSQLCertificateRepository struct {
	db *sql.DB
}

// NewPostgreSQLCertificateRepository creates a new PostgreSQLCertificateRepository.
func NewPostgreSQLCertificateRepository(db *sql.DB) *PostgreSQLCertificateRepository {
	return &PostgreSQLCertificateRepository{db: db}
}

const certificateColumns = `id, reference_type, reference_id, user_id, certificate_thumbprint,
			  certificate_subject_dn, certificate_issuer_dn, certificate_serial_number, created_at`

func scanCertificate(row *sql.Row) (*domain.CertificateCredential, error) {
	var credential domain.CertificateCredential
	err := row.Scan(
		&credential.ID,
		&credential.ReferenceType,
		&credential.ReferenceID,
		&credential.UserID,
		&credential.CertificateThumbprint,
		&credential.CertificateSubjectDN,
		&credential.CertificateIssuerDN,
		&credential.CertificateSerialNumber,
		&credential.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

// Get retrieves a certificate credential by ID.
func (r *PostgreSQLCertificateRepository) Get(
	ctx context.Context,
	credentialID uuid.UUID,
) (*domain.CertificateCredential, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + certificateColumns + `
			  FROM certificate_credentials
			  WHERE id = $1`

	credential, err := scanCertificate(querier.QueryRowContext(ctx, query, credentialID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")
		}
		return nil, apperrors.Technical(err, "failed to get certificate credential")
	}
	return credential, nil
}

// GetByThumbprint retrieves the credential registered for a thumbprint within
// the reference scope.
func (r *PostgreSQLCertificateRepository) GetByThumbprint(
	ctx context.Context,
	referenceType domain.ReferenceType,
	referenceID uuid.UUID,
	thumbprint string,
) (*domain.CertificateCredential, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + certificateColumns + `
			  FROM certificate_credentials
			  WHERE reference_type = $1 AND reference_id = $2 AND certificate_thumbprint = $3`

	credential, err := scanCertificate(querier.QueryRowContext(ctx, query, referenceType, referenceID, thumbprint))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")
		}
		return nil, apperrors.Technical(err, "failed to get certificate credential by thumbprint")
	}
	return credential, nil
}

// FindByUserID retrieves all credentials a user holds within the reference
// scope, oldest first.
func (r *PostgreSQLCertificateRepository) FindByUserID(
	ctx context.Context,
	referenceType domain.ReferenceType,
	referenceID uuid.UUID,
	userID uuid.UUID,
) ([]*domain.CertificateCredential, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + certificateColumns + `
			  FROM certificate_credentials
			  WHERE reference_type = $1 AND reference_id = $2 AND user_id = $3
			  ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, referenceType, referenceID, userID)
	if err != nil {
		return nil, apperrors.Technical(err, "failed to find certificate credentials")
	}
	defer rows.Close() //nolint:errcheck

	var credentials []*domain.CertificateCredential
	for rows.Next() {
		var credential domain.CertificateCredential

		err := rows.Scan(
			&credential.ID,
			&credential.ReferenceType,
			&credential.ReferenceID,
			&credential.UserID,
			&credential.CertificateThumbprint,
			&credential.CertificateSubjectDN,
			&credential.CertificateIssuerDN,
			&credential.CertificateSerialNumber,
			&credential.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Technical(err, "failed to scan certificate credential")
		}

		credentials = append(credentials, &credential)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Technical(err, "failed to iterate certificate credentials")
	}

	return credentials, nil
}

// Create inserts a new certificate credential. The unique index on
// (reference_type, reference_id, certificate_thumbprint) backstops the
// duplicate check done by the use case.
func (r *PostgreSQLCertificateRepository) Create(
	ctx context.Context,
	credential *domain.CertificateCredential,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO certificate_credentials
			  (id, reference_type, reference_id, user_id, certificate_thumbprint,
			   certificate_subject_dn, certificate_issuer_dn, certificate_serial_number, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID,
		credential.ReferenceType,
		credential.ReferenceID,
		credential.UserID,
		credential.CertificateThumbprint,
		credential.CertificateSubjectDN,
		credential.CertificateIssuerDN,
		credential.CertificateSerialNumber,
		credential.CreatedAt,
	)
	if err != nil {
		return apperrors.Technical(err, "failed to create certificate credential")
	}
	return nil
}

// Delete removes a certificate credential by ID.
func (r *PostgreSQLCertificateRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM certificate_credentials WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, credentialID)
	if err != nil {
		return apperrors.Technical(err, "failed to delete certificate credential")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Technical(err, "failed to get rows affected")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")
	}

	return nil
}

// DeleteByUserID removes all credentials a user holds within the reference
// scope. Deleting zero rows is not an error.
func (r *PostgreSQLCertificateRepository) DeleteByUserID(
	ctx context.Context,
	referenceType domain.ReferenceType,
	referenceID uuid.UUID,
	userID uuid.UUID,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM certificate_credentials
			  WHERE reference_type = $1 AND reference_id = $2 AND user_id = $3`

	_, err := querier.ExecContext(ctx, query, referenceType, referenceID, userID)
	if err != nil {
		return apperrors.Technical(err, "failed to delete certificate credentials by user")
	}
	return nil
}

// DeleteByReference removes all credentials scoped to the reference. Deleting
// zero rows is not an error.
func (r *PostgreSQLCertificateRepository) DeleteByReference(
	ctx context.Context,
	referenceType domain.ReferenceType,
	referenceID uuid.UUID,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM certificate_credentials
			  WHERE reference_type = $1 AND reference_id = $2`

	_, err := querier.ExecContext(ctx, query, referenceType, referenceID)
	if err != nil {
		return apperrors.Technical(err, "failed to delete certificate credentials by reference")
	}
	return nil
}
