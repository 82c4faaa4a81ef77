// Package mocks provides mock implementations for testing the credentials HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
)

// MockCertificateUseCase is a mock implementation of CertificateUseCase for testing.
type MockCertificateUseCase struct {
	mock.Mock
}

// EnrollCertificate mocks the EnrollCertificate method of CertificateUseCase.
func (m *MockCertificateUseCase) EnrollCertificate(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	pemCertificate string,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, domain, userID, pemCertificate, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.CertificateCredential), args.Error(1)
}

// FindByID mocks the FindByID method of CertificateUseCase.
func (m *MockCertificateUseCase) FindByID(
	ctx context.Context,
	domain *identityDomain.Domain,
	credentialID uuid.UUID,
) (*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, domain, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.CertificateCredential), args.Error(1)
}

// DeleteByDomainAndUserAndID mocks the DeleteByDomainAndUserAndID method of CertificateUseCase.
func (m *MockCertificateUseCase) DeleteByDomainAndUserAndID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
	credentialID uuid.UUID,
	actor auditDomain.Actor,
) (*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, domain, userID, credentialID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.CertificateCredential), args.Error(1)
}

// DeleteByUserID mocks the DeleteByUserID method of CertificateUseCase.
func (m *MockCertificateUseCase) DeleteByUserID(
	ctx context.Context,
	domain *identityDomain.Domain,
	userID uuid.UUID,
) error {
	args := m.Called(ctx, domain, userID)
	return args.Error(0)
}

// DeleteByDomain mocks the DeleteByDomain method of CertificateUseCase.
func (m *MockCertificateUseCase) DeleteByDomain(ctx context.Context, domain *identityDomain.Domain) error {
	args := m.Called(ctx, domain)
	return args.Error(0)
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

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// Get mocks the Get method of UserRepository.
func (m *MockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*identityDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.User), args.Error(1)
}
