package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	"github.com/idforge/credentials/internal/database"
	apperrors "github.com/idforge/credentials/internal/errors"
	eventsDomain "github.com/idforge/credentials/internal/events/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
	secretsService "github.com/idforge/credentials/internal/secrets/service"
)

// Config holds the client secret lifecycle configuration.
type Config struct {
	// SecretsMax is the maximum number of live secrets per application.
	SecretsMax int
	// DefaultAlgorithm is used when an application has no settings entry yet.
	DefaultAlgorithm secretsDomain.Algorithm
	// BCryptRounds is the cost parameter stamped on new bcrypt settings entries.
	BCryptRounds int
}

// clientSecretUseCase implements ClientSecretUseCase.
type clientSecretUseCase struct {
	config     Config
	txManager  database.TxManager
	appRepo    ApplicationRepository
	outboxRepo OutboxEventRepository
	registry   *secretsService.EncoderRegistry
	audit      AuditReporter
}

// Create generates and persists a new client secret for the application.
// Fails before any generation when the application already holds the maximum
// number of secrets. New secrets always use the newest configured settings
// entry; the first secret of an application gets the configured default.
func (u *clientSecretUseCase) Create(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	input *secretsDomain.NewClientSecret,
	actor auditDomain.Actor,
) (*CreateClientSecretOutput, error) {
	// Limit check happens before any secret generation
	if len(application.Secrets) >= u.config.SecretsMax {
		err := apperrors.NewLimitError("client secrets", len(application.Secrets), u.config.SecretsMax)
		u.report(ctx, auditDomain.EventClientSecretCreated, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	settings := application.EnsureSecretSettings(u.currentSettings(application))

	output, err := u.generate(input.Name, application, &settings, domain)
	if err != nil {
		u.report(ctx, auditDomain.EventClientSecretCreated, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	output.Secret.ID = uuid.Must(uuid.NewV7())
	application.Secrets = append(application.Secrets, *output.Secret)
	application.UpdatedAt = time.Now().UTC()

	if err := u.persist(ctx, application, "created", output.Secret.ID); err != nil {
		u.report(ctx, auditDomain.EventClientSecretCreated, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	u.report(ctx, auditDomain.EventClientSecretCreated, actor, domain, auditDomain.StatusSuccess, map[string]any{
		"application_id": application.ID.String(),
		"secret_id":      output.Secret.ID.String(),
		"secret_name":    output.Secret.Name,
	})

	return output, nil
}

// Renew regenerates the value of an existing secret in place: same ID, new
// value, creation instant and expiration. The algorithm follows the current
// default settings, except for client_secret_jwt applications where it is
// forced to plaintext because the authentication method needs to retrieve the
// secret to validate a signature; a one-way hash would make that impossible.
func (u *clientSecretUseCase) Renew(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) (*CreateClientSecretOutput, error) {
	target := application.SecretByID(secretID)
	if target == nil {
		return nil, secretsDomain.ErrClientSecretNotFound
	}

	candidate := u.currentSettings(application)
	if application.TokenEndpointAuthMethod == identityDomain.ClientSecretJWT {
		candidate = secretsDomain.SecretSettings{
			ID:        uuid.Must(uuid.NewV7()),
			Algorithm: secretsDomain.AlgorithmNone,
		}
	}
	settings := application.EnsureSecretSettings(candidate)

	output, err := u.generate(target.Name, application, &settings, domain)
	if err != nil {
		u.report(ctx, auditDomain.EventClientSecretRenewed, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"secret_id":      secretID.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	target.SecretValue = output.Secret.SecretValue
	target.SettingsID = output.Secret.SettingsID
	target.CreatedAt = output.Secret.CreatedAt
	target.ExpiresAt = output.Secret.ExpiresAt
	output.Secret = target

	application.PruneSecretSettings()
	application.UpdatedAt = time.Now().UTC()

	if err := u.persist(ctx, application, "renewed", secretID); err != nil {
		u.report(ctx, auditDomain.EventClientSecretRenewed, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"secret_id":      secretID.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	u.report(ctx, auditDomain.EventClientSecretRenewed, actor, domain, auditDomain.StatusSuccess, map[string]any{
		"application_id": application.ID.String(),
		"secret_id":      secretID.String(),
	})

	return output, nil
}

// Delete removes a secret from the application. Refuses to delete the last
// remaining secret; an application is never left without one.
func (u *clientSecretUseCase) Delete(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) error {
	if application.SecretByID(secretID) == nil {
		return secretsDomain.ErrClientSecretNotFound
	}

	if len(application.Secrets) <= 1 {
		u.report(ctx, auditDomain.EventClientSecretDeleted, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"secret_id":      secretID.String(),
			"error":          secretsDomain.ErrLastClientSecret.Error(),
		})
		return secretsDomain.ErrLastClientSecret
	}

	application.RemoveSecret(secretID)
	application.UpdatedAt = time.Now().UTC()

	if err := u.persist(ctx, application, "deleted", secretID); err != nil {
		u.report(ctx, auditDomain.EventClientSecretDeleted, actor, domain, auditDomain.StatusFailure, map[string]any{
			"application_id": application.ID.String(),
			"secret_id":      secretID.String(),
			"error":          err.Error(),
		})
		return err
	}

	u.report(ctx, auditDomain.EventClientSecretDeleted, actor, domain, auditDomain.StatusSuccess, map[string]any{
		"application_id": application.ID.String(),
		"secret_id":      secretID.String(),
	})

	return nil
}

// FindAllByApplication returns metadata-only copies of the application's
// secrets, in list order. Secret values are blanked so neither hashes nor
// plaintext leak through the read path.
func (u *clientSecretUseCase) FindAllByApplication(
	application *identityDomain.Application,
) []secretsDomain.ClientSecret {
	secrets := make([]secretsDomain.ClientSecret, len(application.Secrets))
	for i, secret := range application.Secrets {
		secret.SecretValue = ""
		secrets[i] = secret
	}
	return secrets
}

// Validate reports whether the candidate matches any non-expired secret of the
// application, each secret validating with its own algorithm.
func (u *clientSecretUseCase) Validate(application *identityDomain.Application, candidate string) bool {
	return u.registry.ValidateSecret(application, candidate)
}

// currentSettings resolves the settings entry for new secrets: the newest
// configured entry, or the configured default when the application has none.
func (u *clientSecretUseCase) currentSettings(application *identityDomain.Application) secretsDomain.SecretSettings {
	if current := application.CurrentSecretSettings(); current != nil {
		return *current
	}
	return u.defaultSettings()
}

// defaultSettings builds a settings candidate from the configured default
// algorithm. The caller de-duplicates it against the application's entries.
func (u *clientSecretUseCase) defaultSettings() secretsDomain.SecretSettings {
	settings := secretsDomain.SecretSettings{
		ID:        uuid.Must(uuid.NewV7()),
		Algorithm: u.config.DefaultAlgorithm,
	}
	if settings.Algorithm == secretsDomain.AlgorithmBCrypt {
		settings.Parameters = map[string]string{"rounds": strconv.Itoa(u.config.BCryptRounds)}
	}
	return settings
}

// generate creates a fresh raw secret and encodes it with the given settings,
// resolving expiration through the domain/application cascade.
func (u *clientSecretUseCase) generate(
	name string,
	application *identityDomain.Application,
	settings *secretsDomain.SecretSettings,
	domain *identityDomain.Domain,
) (*CreateClientSecretOutput, error) {
	rawSecret, err := secretsService.NewRawSecret()
	if err != nil {
		return nil, err
	}

	secret, err := u.registry.GenerateSecret(
		name,
		rawSecret,
		settings,
		domain.SecretExpirationSettings,
		application.SecretExpirationSettings(),
	)
	if err != nil {
		return nil, err
	}

	return &CreateClientSecretOutput{Secret: secret, RawSecret: rawSecret}, nil
}

// persist writes the full aggregate and the reload notification in a single
// transaction so gateways never observe a mutation without its event.
func (u *clientSecretUseCase) persist(
	ctx context.Context,
	application *identityDomain.Application,
	change string,
	secretID uuid.UUID,
) error {
	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.appRepo.Update(txCtx, application); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]string{
			"domain_id":      application.DomainID.String(),
			"application_id": application.ID.String(),
			"secret_id":      secretID.String(),
			"change":         change,
		})
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal outbox payload")
		}

		event := eventsDomain.NewOutboxEvent(
			eventsDomain.EventApplicationSecretsChanged,
			"application",
			application.ID,
			string(payload),
		)
		return u.outboxRepo.Create(txCtx, event)
	})
}

// report emits an audit record for a terminal outcome. Fire-and-forget.
func (u *clientSecretUseCase) report(
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

// NewClientSecretUseCase creates a new ClientSecretUseCase with the provided dependencies.
func NewClientSecretUseCase(
	config Config,
	txManager database.TxManager,
	appRepo ApplicationRepository,
	outboxRepo OutboxEventRepository,
	registry *secretsService.EncoderRegistry,
	audit AuditReporter,
) ClientSecretUseCase {
	return &clientSecretUseCase{
		config:     config,
		txManager:  txManager,
		appRepo:    appRepo,
		outboxRepo: outboxRepo,
		registry:   registry,
		audit:      audit,
	}
}
