package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/app"
	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	"github.com/idforge/credentials/internal/config"
)

// RunRenewSecret regenerates the value of a client secret from the command
// line. The new plaintext secret is printed once and cannot be retrieved
// afterwards.
func RunRenewSecret(ctx context.Context, domainIDStr, applicationIDStr, secretIDStr string) error {
	domainID, err := uuid.Parse(domainIDStr)
	if err != nil {
		return fmt.Errorf("invalid domain ID: %w", err)
	}
	applicationID, err := uuid.Parse(applicationIDStr)
	if err != nil {
		return fmt.Errorf("invalid application ID: %w", err)
	}
	secretID, err := uuid.Parse(secretIDStr)
	if err != nil {
		return fmt.Errorf("invalid secret ID: %w", err)
	}

	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	domainRepo, err := container.DomainRepository()
	if err != nil {
		return fmt.Errorf("failed to initialize domain repository: %w", err)
	}
	applicationRepo, err := container.ApplicationRepository()
	if err != nil {
		return fmt.Errorf("failed to initialize application repository: %w", err)
	}
	useCase, err := container.ClientSecretUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize client secret use case: %w", err)
	}

	domain, err := domainRepo.Get(ctx, domainID)
	if err != nil {
		return fmt.Errorf("failed to get domain: %w", err)
	}
	application, err := applicationRepo.Get(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to get application: %w", err)
	}
	if application.DomainID != domain.ID {
		return fmt.Errorf("application %s does not belong to domain %s", applicationID, domainID)
	}

	actor := auditDomain.Actor{Type: auditDomain.ActorTypeSystem, DisplayName: "cli"}
	output, err := useCase.Renew(ctx, domain, application, secretID, actor)
	if err != nil {
		return fmt.Errorf("failed to renew secret: %w", err)
	}

	fmt.Printf("Secret ID: %s\n", output.Secret.ID)
	fmt.Printf("New secret value (shown once): %s\n", output.RawSecret)
	if output.Secret.ExpiresAt != nil {
		fmt.Printf("Expires at: %s\n", output.Secret.ExpiresAt)
	}

	return nil
}
