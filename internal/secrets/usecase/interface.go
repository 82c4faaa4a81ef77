// Package usecase implements business logic orchestration for the client
// secret lifecycle: creation, renewal, deletion, listing and validation of the
// shared secrets that authenticate client applications.
package usecase

import (
	"context"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	eventsDomain "github.com/idforge/credentials/internal/events/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// ApplicationRepository defines the interface for Application persistence operations.
// Update replaces the full aggregate (secrets and settings included).
type ApplicationRepository interface {
	Get(ctx context.Context, applicationID uuid.UUID) (*identityDomain.Application, error)
	Update(ctx context.Context, application *identityDomain.Application) error
}

// OutboxEventRepository persists notification events in the same transaction as
// the aggregate mutation they describe.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *eventsDomain.OutboxEvent) error
}

// AuditReporter receives a structured outcome record for every mutating
// operation, success or failure. Fire-and-forget: implementations never fail
// the calling operation.
type AuditReporter interface {
	Report(ctx context.Context, event *auditDomain.Event)
}

// CreateClientSecretOutput contains the result of creating or renewing a secret.
// SECURITY: RawSecret is only returned once; for hashing algorithms it is never
// retrievable again after this response.
type CreateClientSecretOutput struct {
	Secret    *secretsDomain.ClientSecret
	RawSecret string
}

// ClientSecretUseCase defines the client secret lifecycle business logic.
type ClientSecretUseCase interface {
	// Create generates and appends a new secret to the application, enforcing
	// the per-application secret limit.
	Create(
		ctx context.Context,
		domain *identityDomain.Domain,
		application *identityDomain.Application,
		input *secretsDomain.NewClientSecret,
		actor auditDomain.Actor,
	) (*CreateClientSecretOutput, error)

	// Renew regenerates the value of an existing secret in place, keeping its ID.
	Renew(
		ctx context.Context,
		domain *identityDomain.Domain,
		application *identityDomain.Application,
		secretID uuid.UUID,
		actor auditDomain.Actor,
	) (*CreateClientSecretOutput, error)

	// Delete removes a secret, refusing to leave the application with none.
	Delete(
		ctx context.Context,
		domain *identityDomain.Domain,
		application *identityDomain.Application,
		secretID uuid.UUID,
		actor auditDomain.Actor,
	) error

	// FindAllByApplication returns the application's secrets as metadata-only
	// projections; secret values are never exposed through this read path.
	FindAllByApplication(application *identityDomain.Application) []secretsDomain.ClientSecret

	// Validate reports whether the candidate matches a non-expired secret.
	Validate(application *identityDomain.Application, candidate string) bool
}
