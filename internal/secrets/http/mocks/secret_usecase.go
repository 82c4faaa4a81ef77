// Package mocks provides mock implementations for testing the secrets HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
	secretsUseCase "github.com/idforge/credentials/internal/secrets/usecase"
)

// MockClientSecretUseCase is a mock implementation of ClientSecretUseCase for testing.
type MockClientSecretUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ClientSecretUseCase.
func (m *MockClientSecretUseCase) Create(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	input *secretsDomain.NewClientSecret,
	actor auditDomain.Actor,
) (*secretsUseCase.CreateClientSecretOutput, error) {
	args := m.Called(ctx, domain, application, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsUseCase.CreateClientSecretOutput), args.Error(1)
}

// Renew mocks the Renew method of ClientSecretUseCase.
func (m *MockClientSecretUseCase) Renew(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) (*secretsUseCase.CreateClientSecretOutput, error) {
	args := m.Called(ctx, domain, application, secretID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsUseCase.CreateClientSecretOutput), args.Error(1)
}

// Delete mocks the Delete method of ClientSecretUseCase.
func (m *MockClientSecretUseCase) Delete(
	ctx context.Context,
	domain *identityDomain.Domain,
	application *identityDomain.Application,
	secretID uuid.UUID,
	actor auditDomain.Actor,
) error {
	args := m.Called(ctx, domain, application, secretID, actor)
	return args.Error(0)
}

// FindAllByApplication mocks the FindAllByApplication method of ClientSecretUseCase.
func (m *MockClientSecretUseCase) FindAllByApplication(
	application *identityDomain.Application,
) []secretsDomain.ClientSecret {
	args := m.Called(application)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]secretsDomain.ClientSecret)
}

// Validate mocks the Validate method of ClientSecretUseCase.
func (m *MockClientSecretUseCase) Validate(application *identityDomain.Application, candidate string) bool {
	args := m.Called(application, candidate)
	return args.Bool(0)
}

// MockDomainRepository is a mock implementation of DomainRepository for testing.
type MockDomainRepository struct {
	mock.Mock
}

// Get mocks the Get method of DomainRepository.
func (m *MockDomainRepository) Get(ctx context.Context, domainID uuid.UUID) (*identityDomain.Domain, error) {
	args := m.Called(ctx, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Domain), args.Error(1)
}
