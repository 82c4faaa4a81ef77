package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	credentialsService "github.com/idforge/credentials/internal/credentials/service"
	apperrors "github.com/idforge/credentials/internal/errors"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
)

// Config holds the certificate credential lifecycle configuration.
type Config struct {
	// MaxCertificatesPerUser bounds the credential count per (domain, user).
	MaxCertificatesPerUser int
}

// certificateUseCase implements CertificateUseCase.
type certificateUseCase struct {
	config          Config
	certificateRepo CertificateRepository
	audit           AuditReporter
}

// EnrollCertificate validates and persists a certificate credential.
// Validation order is fail-fast: (a) parse and expiry check before any
// repository call, (b) duplicate thumbprint within the domain, (c) per-user
// limit, (d) persist. Every outcome produces exactly one audit record.
func (u *certificateUseCase) EnrollCertificate(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	pemCertificate string,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	parsed, err := credentialsService.ParseCertificate(pemCertificate)
	if err != nil {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	if parsed.Expired(time.Now().UTC()) {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      credentialsDomain.ErrCertificateExpired.Error(),
		})
		return nil, credentialsDomain.ErrCertificateExpired
	}

	existing, err := u.certificateRepo.GetByThumbprint(
		ctx,
		credentialsDomain.ReferenceTypeDomain,
		domain.ID,
		parsed.Thumbprint,
	)
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      credentialsDomain.ErrDuplicateCertificate.Error(),
		})
		return nil, credentialsDomain.ErrDuplicateCertificate
	}

	credentials, err := u.certificateRepo.FindByUserID(
		ctx,
		credentialsDomain.ReferenceTypeDomain,
		domain.ID,
		userID,
	)
	if err != nil {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      err.Error(),
		})
		return nil, err
	}
	if len(credentials) >= u.config.MaxCertificatesPerUser {
		limitErr := apperrors.NewLimitError("certificate credentials", len(credentials), u.config.MaxCertificatesPerUser)
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      limitErr.Error(),
		})
		return nil, limitErr
	}

	credential := &credentialsDomain.CertificateCredential{
		ID:                      uuid.Must(uuid.NewV7()),
		ReferenceType:           credentialsDomain.ReferenceTypeDomain,
		ReferenceID:             domain.ID,
		UserID:                  userID,
		CertificateThumbprint:   parsed.Thumbprint,
		CertificateSubjectDN:    parsed.SubjectDN,
		CertificateIssuerDN:     parsed.IssuerDN,
		CertificateSerialNumber: parsed.SerialNumber,
		CreatedAt:               time.Now().UTC(),
	}

	if err := u.certificateRepo.Create(ctx, credential); err != nil {
		u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusFailure, map[string]any{
			"user_id":    userID.String(),
			"thumbprint": parsed.Thumbprint,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.report(ctx, auditDomain.EventCertificateEnrolled, actor, domain, auditDomain.StatusSuccess, map[string]any{
		"credential_id": credential.ID.String(),
		"user_id":       userID.String(),
		"thumbprint":    parsed.Thumbprint,
		"subject_dn":    parsed.SubjectDN,
	})

	return credential, nil
}

// FindByID performs a tenancy check: a credential belonging to another domain
// is reported as not found, never exposed and never an error about permissions.
func (u *certificateUseCase) FindByID(
	ctx context.Context,
	domain *identityDomain.Domain,
	credentialID uuid.UUID,
) (*credentialsDomain.CertificateCredential, error) {
	credential, err := u.certificateRepo.Get(ctx, credentialID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, credentialsDomain.ErrCertificateNotFound
		}
		return nil, err
	}

	if !u.belongsToDomain(credential, domain) {
		return nil, credentialsDomain.ErrCertificateNotFound
	}

	return credential, nil
}

// DeleteByDomainAndUserAndID deletes the credential only when the full
// (domain, user, id) tuple matches. A mismatch returns not found without an
// audit record; that is a client error, not a system event.
func (u *certificateUseCase) DeleteByDomainAndUserAndID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	credentialID uuid.UUID,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	credential, err := u.certificateRepo.Get(ctx, credentialID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, credentialsDomain.ErrCertificateNotFound
		}
		return nil, err
	}

	if !u.belongsToDomain(credential, domain) || credential.UserID != userID {
		return nil, credentialsDomain.ErrCertificateNotFound
	}

	if err := u.certificateRepo.Delete(ctx, credentialID); err != nil {
		u.report(ctx, auditDomain.EventCertificateDeleted, actor, domain, auditDomain.StatusFailure, map[string]any{
			"credential_id": credentialID.String(),
			"user_id":       userID.String(),
			"error":         err.Error(),
		})
		return nil, err
	}

	u.report(ctx, auditDomain.EventCertificateDeleted, actor, domain, auditDomain.StatusSuccess, map[string]any{
		"credential_id": credential.ID.String(),
		"user_id":       credential.UserID.String(),
		"thumbprint":    credential.CertificateThumbprint,
	})

	return credential, nil
}

// DeleteByUserID removes all credentials of the user within the domain.
// Bulk, unconditional, no audit trail.
func (u *certificateUseCase) DeleteByUserID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
) error {
	return u.certificateRepo.DeleteByUserID(ctx, credentialsDomain.ReferenceTypeDomain, domain.ID, userID)
}

// DeleteByDomain removes all credentials scoped to the domain.
// Bulk, unconditional, no audit trail.
func (u *certificateUseCase) DeleteByDomain(ctx context.Context, domain *identityDomain.Domain) error {
	return u.certificateRepo.DeleteByReference(ctx, credentialsDomain.ReferenceTypeDomain, domain.ID)
}

// belongsToDomain checks the credential's owning reference against the caller's
// expected scope.
func (u *certificateUseCase) belongsToDomain(
	credential *credentialsDomain.CertificateCredential,
	domain *identityDomain.Domain,
) bool {
	return credential.ReferenceType == credentialsDomain.ReferenceTypeDomain &&
		credential.ReferenceID == domain.ID
}

// report emits an audit record for a terminal outcome. Fire-and-forget.
func (u *certificateUseCase) report(
	ctx context.Context,
	eventType string,
	actor auditDomain.Actor,
	domain *identityDomain.Domain,
	status auditDomain.Status,
	payload map[string]any,
) {
	u.audit.Report(ctx, auditDomain.NewEvent(
		eventType,
		actor,
		auditDomain.ReferenceTypeDomain,
		domain.ID,
		status,
		payload,
	))
}

// NewCertificateUseCase creates a new CertificateUseCase with the provided dependencies.
func NewCertificateUseCase(
	config Config,
	certificateRepo CertificateRepository,
	audit AuditReporter,
) CertificateUseCase {
	return &certificateUseCase{
		config:          config,
		certificateRepo: certificateRepo,
		audit:           audit,
	}
}
