package app

import (
	"fmt"
	"sync"

	identityRepository "github.com/idforge/credentials/internal/identity/repository"
	secretsUseCase "github.com/idforge/credentials/internal/secrets/usecase"
)

// identityComponents holds the lazily initialized identity layer.
type identityComponents struct {
	domainRepoInit      sync.Once
	applicationRepoInit sync.Once
	userRepoInit        sync.Once

	domainRepo      *identityRepository.PostgreSQLDomainRepository
	applicationRepo secretsUseCase.ApplicationRepository
	userRepo        *identityRepository.PostgreSQLUserRepository
}

// DomainRepository returns the security domain repository instance.
func (c *Container) DomainRepository() (*identityRepository.PostgreSQLDomainRepository, error) {
	c.identity.domainRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["domainRepo"] = fmt.Errorf("failed to get database for domain repository: %w", err)
			return
		}
		c.identity.domainRepo = identityRepository.NewPostgreSQLDomainRepository(db)
	})
	if err, exists := c.initErrors["domainRepo"]; exists {
		return nil, err
	}
	return c.identity.domainRepo, nil
}

// ApplicationRepository returns the application repository instance.
func (c *Container) ApplicationRepository() (secretsUseCase.ApplicationRepository, error) {
	c.identity.applicationRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["applicationRepo"] = fmt.Errorf("failed to get database for application repository: %w", err)
			return
		}
		c.identity.applicationRepo = identityRepository.NewPostgreSQLApplicationRepository(db)
	})
	if err, exists := c.initErrors["applicationRepo"]; exists {
		return nil, err
	}
	return c.identity.applicationRepo, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (*identityRepository.PostgreSQLUserRepository, error) {
	c.identity.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}
		c.identity.userRepo = identityRepository.NewPostgreSQLUserRepository(db)
	})
	if err, exists := c.initErrors["userRepo"]; exists {
		return nil, err
	}
	return c.identity.userRepo, nil
}
