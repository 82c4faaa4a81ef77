package app

import (
	"fmt"
	"sync"

	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
	secretsHTTP "github.com/idforge/credentials/internal/secrets/http"
	secretsService "github.com/idforge/credentials/internal/secrets/service"
	secretsUseCase "github.com/idforge/credentials/internal/secrets/usecase"
)

// secretsComponents holds the lazily initialized client secret layer.
type secretsComponents struct {
	registryInit sync.Once
	useCaseInit  sync.Once
	handlerInit  sync.Once

	registry *secretsService.EncoderRegistry
	useCase  secretsUseCase.ClientSecretUseCase
	handler  *secretsHTTP.SecretHandler
}

// EncoderRegistry returns the shared secret encoder registry.
func (c *Container) EncoderRegistry() *secretsService.EncoderRegistry {
	c.secrets.registryInit.Do(func() {
		c.secrets.registry = secretsService.NewEncoderRegistry()
	})
	return c.secrets.registry
}

// ClientSecretUseCase returns the client secret use case, wrapped with business
// metrics when metrics are enabled.
func (c *Container) ClientSecretUseCase() (secretsUseCase.ClientSecretUseCase, error) {
	c.secrets.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["clientSecretUseCase"] = fmt.Errorf("failed to get tx manager for client secret use case: %w", err)
			return
		}

		applicationRepo, err := c.ApplicationRepository()
		if err != nil {
			c.initErrors["clientSecretUseCase"] = fmt.Errorf("failed to get application repository for client secret use case: %w", err)
			return
		}

		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			c.initErrors["clientSecretUseCase"] = fmt.Errorf("failed to get outbox repository for client secret use case: %w", err)
			return
		}

		reporter, err := c.AuditReporter()
		if err != nil {
			c.initErrors["clientSecretUseCase"] = fmt.Errorf("failed to get audit reporter for client secret use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["clientSecretUseCase"] = fmt.Errorf("failed to get business metrics for client secret use case: %w", err)
			return
		}

		useCase := secretsUseCase.NewClientSecretUseCase(
			secretsUseCase.Config{
				SecretsMax:       c.config.SecretsMax,
				DefaultAlgorithm: secretsDomain.Algorithm(c.config.DefaultSecretAlgorithm),
				BCryptRounds:     c.config.BCryptRounds,
			},
			txManager,
			applicationRepo,
			outboxRepo,
			c.EncoderRegistry(),
			reporter,
		)

		c.secrets.useCase = secretsUseCase.NewClientSecretUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err, exists := c.initErrors["clientSecretUseCase"]; exists {
		return nil, err
	}
	return c.secrets.useCase, nil
}

// SecretHandler returns the HTTP handler for client secret operations.
func (c *Container) SecretHandler() (*secretsHTTP.SecretHandler, error) {
	c.secrets.handlerInit.Do(func() {
		useCase, err := c.ClientSecretUseCase()
		if err != nil {
			c.initErrors["secretHandler"] = fmt.Errorf("failed to get client secret use case for secret handler: %w", err)
			return
		}

		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["secretHandler"] = fmt.Errorf("failed to get domain repository for secret handler: %w", err)
			return
		}

		applicationRepo, err := c.ApplicationRepository()
		if err != nil {
			c.initErrors["secretHandler"] = fmt.Errorf("failed to get application repository for secret handler: %w", err)
			return
		}

		c.secrets.handler = secretsHTTP.NewSecretHandler(useCase, domainRepo, applicationRepo, c.Logger())
	})
	if err, exists := c.initErrors["secretHandler"]; exists {
		return nil, err
	}
	return c.secrets.handler, nil
}
