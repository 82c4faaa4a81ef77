package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	"github.com/idforge/credentials/internal/metrics"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// clientSecretUseCaseWithMetrics decorates ClientSecretUseCase with metrics instrumentation.
type clientSecretUseCaseWithMetrics struct {
	next    ClientSecretUseCase
	metrics metrics.BusinessMetrics
}

// NewClientSecretUseCaseWithMetrics wraps a ClientSecretUseCase with metrics recording.
func NewClientSecretUseCaseWithMetrics(useCase ClientSecretUseCase, m metrics.BusinessMetrics) ClientSecretUseCase {
	return &clientSecretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for secret creation operations.
func (s *clientSecretUseCaseWithMetrics) Create(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	input *secretsDomain.NewClientSecret,
	actor auditDomain.Actor,
) (*CreateClientSecretOutput, error) {
	start := time.Now()
	output, err := s.next.Create(ctx, domain, application, input, actor)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "secret_create", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_create", time.Since(start), status)

	return output, err
}

// Renew records metrics for secret renewal operations.
func (s *clientSecretUseCaseWithMetrics) Renew(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) (*CreateClientSecretOutput, error) {
	start := time.Now()
	output, err := s.next.Renew(ctx, domain, application, secretID, actor)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "secret_renew", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_renew", time.Since(start), status)

	return output, err
}

// Delete records metrics for secret deletion operations.
func (s *clientSecretUseCaseWithMetrics) Delete(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) error {
	start := time.Now()
	err := s.next.Delete(ctx, domain, application, secretID, actor)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "secret_delete", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_delete", time.Since(start), status)

	return err
}

// FindAllByApplication is an in-memory projection; it is not instrumented.
func (s *clientSecretUseCaseWithMetrics) FindAllByApplication(
	application *identityDomain.Application,
) []secretsDomain.ClientSecret {
	return s.next.FindAllByApplication(application)
}

// Validate records metrics for secret validation checks.
func (s *clientSecretUseCaseWithMetrics) Validate(
	application *identityDomain.Application,
	candidate string,
) bool {
	start := time.Now()
	ok := s.next.Validate(application, candidate)

	status := "success"
	if !ok {
		status = "error"
	}

	ctx := context.Background()
	s.metrics.RecordOperation(ctx, "secrets", "secret_validate", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_validate", time.Since(start), status)

	return ok
}
