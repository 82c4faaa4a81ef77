package app

import (
	"fmt"
	"sync"

	credentialsHTTP "github.com/idforge/credentials/internal/credentials/http"
	credentialsRepository "github.com/idforge/credentials/internal/credentials/repository"
	credentialsUseCase "github.com/idforge/credentials/internal/credentials/usecase"
)

// credentialsComponents holds the lazily initialized certificate credential layer.
type credentialsComponents struct {
	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once

	repo    credentialsUseCase.CertificateRepository
	useCase credentialsUseCase.CertificateUseCase
	handler *credentialsHTTP.CertificateHandler
}

// CertificateRepository returns the certificate credential repository instance.
func (c *Container) CertificateRepository() (credentialsUseCase.CertificateRepository, error) {
	c.credentials.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["certificateRepo"] = fmt.Errorf("failed to get database for certificate repository: %w", err)
			return
		}
		c.credentials.repo = credentialsRepository.NewPostgreSQLCertificateRepository(db)
	})
	if err, exists := c.initErrors["certificateRepo"]; exists {
		return nil, err
	}
	return c.credentials.repo, nil
}

// CertificateUseCase returns the certificate credential use case, wrapped with
// business metrics when metrics are enabled.
func (c *Container) CertificateUseCase() (credentialsUseCase.CertificateUseCase, error) {
	c.credentials.useCaseInit.Do(func() {
		repo, err := c.CertificateRepository()
		if err != nil {
			c.initErrors["certificateUseCase"] = fmt.Errorf("failed to get certificate repository for certificate use case: %w", err)
			return
		}

		reporter, err := c.AuditReporter()
		if err != nil {
			c.initErrors["certificateUseCase"] = fmt.Errorf("failed to get audit reporter for certificate use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["certificateUseCase"] = fmt.Errorf("failed to get business metrics for certificate use case: %w", err)
			return
		}

		useCase := credentialsUseCase.NewCertificateUseCase(
			credentialsUseCase.Config{MaxCertificatesPerUser: c.config.MaxCertificatesPerUser},
			repo,
			reporter,
		)

		c.credentials.useCase = credentialsUseCase.NewCertificateUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err, exists := c.initErrors["certificateUseCase"]; exists {
		return nil, err
	}
	return c.credentials.useCase, nil
}

// CertificateHandler returns the HTTP handler for certificate credential operations.
func (c *Container) CertificateHandler() (*credentialsHTTP.CertificateHandler, error) {
	c.credentials.handlerInit.Do(func() {
		useCase, err := c.CertificateUseCase()
		if err != nil {
			c.initErrors["certificateHandler"] = fmt.Errorf("failed to get certificate use case for certificate handler: %w", err)
			return
		}

		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["certificateHandler"] = fmt.Errorf("failed to get domain repository for certificate handler: %w", err)
			return
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["certificateHandler"] = fmt.Errorf("failed to get user repository for certificate handler: %w", err)
			return
		}

		c.credentials.handler = credentialsHTTP.NewCertificateHandler(useCase, domainRepo, userRepo, c.Logger())
	})
	if err, exists := c.initErrors["certificateHandler"]; exists {
		return nil, err
	}
	return c.credentials.handler, nil
}
