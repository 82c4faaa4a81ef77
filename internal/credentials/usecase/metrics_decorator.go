package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	"github.com/idforge/credentials/internal/metrics"
)

// certificateUseCaseWithMetrics decorates CertificateUseCase with metrics instrumentation.
type certificateUseCaseWithMetrics struct {
	next    CertificateUseCase
	metrics metrics.BusinessMetrics
}

// NewCertificateUseCaseWithMetrics wraps a CertificateUseCase with metrics recording.
func NewCertificateUseCaseWithMetrics(useCase CertificateUseCase, m metrics.BusinessMetrics) CertificateUseCase {
	return &certificateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record captures the outcome of one certificate operation.
func (c *certificateUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "certificates", operation, status)
	c.metrics.RecordDuration(ctx, "certificates", operation, time.Since(start), status)
}

// EnrollCertificate records metrics for enrollment operations.
func (c *certificateUseCaseWithMetrics) EnrollCertificate(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	pemCertificate string,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	start := time.Now()
	credential, err := c.next.EnrollCertificate(ctx, domain, userID, pemCertificate, actor)
	c.record(ctx, "certificate_enroll", start, err)
	return credential, err
}

// FindByID records metrics for credential lookups.
func (c *certificateUseCaseWithMetrics) FindByID(
	ctx context.Context,
	domain *identityDomain.Domain,
	credentialID uuid.UUID,
) (*credentialsDomain.CertificateCredential, error) {
	start := time.Now()
	credential, err := c.next.FindByID(ctx, domain, credentialID)
	c.record(ctx, "certificate_get", start, err)
	return credential, err
}

// DeleteByDomainAndUserAndID records metrics for targeted deletions.
func (c *certificateUseCaseWithMetrics) DeleteByDomainAndUserAndID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	credentialID uuid.UUID,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	start := time.Now()
	credential, err := c.next.DeleteByDomainAndUserAndID(ctx, domain, userID, credentialID, actor)
	c.record(ctx, "certificate_delete", start, err)
	return credential, err
}

// DeleteByUserID records metrics for per-user bulk deletions.
func (c *certificateUseCaseWithMetrics) DeleteByUserID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
) error {
	start := time.Now()
	err := c.next.DeleteByUserID(ctx, domain, userID)
	c.record(ctx, "certificate_delete_by_user", start, err)
	return err
}

// DeleteByDomain records metrics for per-domain bulk deletions.
func (c *certificateUseCaseWithMetrics) DeleteByDomain(
	ctx context.Context,
	domain *identityDomain.Domain,
) error {
	start := time.Now()
	err := c.next.DeleteByDomain(ctx, domain)
	c.record(ctx, "certificate_delete_by_domain", start, err)
	return err
}
