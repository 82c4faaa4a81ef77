// Package usecase implements business logic orchestration for certificate
// credential enrollment and lifecycle.
package usecase

import (
	"context"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
)

// CertificateRepository defines the interface for certificate credential
// persistence operations.
type CertificateRepository interface {
	GetByThumbprint(
		ctx context.Context,
		referenceType credentialsDomain.ReferenceType,
		referenceID uuid.UUID,
		thumbprint string,
	) (*credentialsDomain.CertificateCredential, error)
	FindByUserID(
		ctx context.Context,
		referenceType credentialsDomain.ReferenceType,
		referenceID uuid.UUID,
		userID uuid.UUID,
	) ([]*credentialsDomain.CertificateCredential, error)
	Get(ctx context.Context, credentialID uuid.UUID) (*credentialsDomain.CertificateCredential, error)
	Create(ctx context.Context, credential *credentialsDomain.CertificateCredential) error
	Delete(ctx context.Context, credentialID uuid.UUID) error
	DeleteByUserID(
		ctx context.Context,
		referenceType credentialsDomain.ReferenceType,
		referenceID uuid.UUID,
		userID uuid.UUID,
	) error
	DeleteByReference(
		ctx context.Context,
		referenceType credentialsDomain.ReferenceType,
		referenceID uuid.UUID,
	) error
}

// AuditReporter receives a structured outcome record for every enrollment or
// deletion outcome. Fire-and-forget.
type AuditReporter interface {
	Report(ctx context.Context, event *auditDomain.Event)
}

// CertificateUseCase defines the certificate credential lifecycle business logic.
type CertificateUseCase interface {
	// EnrollCertificate validates and persists a certificate credential for the
	// user. Validation is fail-fast: expiry before any repository call, then
	// duplicate thumbprint, then the per-user limit. Every outcome is audited.
	EnrollCertificate(
		ctx context.Context,
		domain *identityDomain.Domain,
		userID uuid.UUID,
		pemCertificate string,
		actor auditDomain.Actor,
	) (*credentialsDomain.CertificateCredential, error)

	// FindByID returns the credential only when it belongs to the given domain;
	// cross-tenant records surface as not found.
	FindByID(
		ctx context.Context,
		domain *identityDomain.Domain,
		credentialID uuid.UUID,
	) (*credentialsDomain.CertificateCredential, error)

	// DeleteByDomainAndUserAndID deletes the credential only when the full
	// tuple matches, returning the deleted record for audit payloads.
	DeleteByDomainAndUserAndID(
		ctx context.Context,
		domain *identityDomain.Domain,
		userID uuid.UUID,
		credentialID uuid.UUID,
		actor auditDomain.Actor,
	) (*credentialsDomain.CertificateCredential, error)

	// DeleteByUserID removes all of a user's credentials within the domain.
	// Used by the user-deletion collaborator; not audited.
	DeleteByUserID(ctx context.Context, domain *identityDomain.Domain, userID uuid.UUID) error

	// DeleteByDomain removes all credentials scoped to the domain. Used by the
	// domain-deletion collaborator; not audited.
	DeleteByDomain(ctx context.Context, domain *identityDomain.Domain) error
}
