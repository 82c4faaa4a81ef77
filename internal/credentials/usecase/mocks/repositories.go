// Package mocks provides mock implementations for testing the certificate use case.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
)

// MockCertificateRepository is a mock implementation of CertificateRepository for testing.
type MockCertificateRepository struct {
	mock.Mock
}

// GetByThumbprint mocks the GetByThumbprint method of CertificateRepository.
func (m *MockCertificateRepository) GetByThumbprint(
	ctx context.Context,
	referenceType credentialsDomain.ReferenceType,
	referenceID uuid.UUID,
	thumbprint string,
) (*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, referenceType, referenceID, thumbprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.CertificateCredential), args.Error(1)
}

// FindByUserID mocks the FindByUserID method of CertificateRepository.
func (m *MockCertificateRepository) FindByUserID(
	ctx context.Context,
	referenceType credentialsDomain.ReferenceType,
	referenceID uuid.UUID,
	userID uuid.UUID,
) ([]*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, referenceType, referenceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialsDomain.CertificateCredential), args.Error(1)
}

// Get mocks the Get method of CertificateRepository.
func (m *MockCertificateRepository) Get(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialsDomain.CertificateCredential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.CertificateCredential), args.Error(1)
}

// Create mocks the Create method of CertificateRepository.
func (m *MockCertificateRepository) Create(ctx context.Context, credential *credentialsDomain.CertificateCredential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// Delete mocks the Delete method of CertificateRepository.
func (m *MockCertificateRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	args := m.Called(ctx, credentialID)
	return args.Error(0)
}

// DeleteByUserID mocks the DeleteByUserID method of CertificateRepository.
func (m *MockCertificateRepository) DeleteByUserID(
	ctx context.Context,
	referenceType credentialsDomain.ReferenceType,
	referenceID uuid.UUID,
	userID uuid.UUID,
) error {
	args := m.Called(ctx, referenceType, referenceID, userID)
	return args.Error(0)
}

// DeleteByReference mocks the DeleteByReference method of CertificateRepository.
func (m *MockCertificateRepository) DeleteByReference(
	ctx context.Context,
	referenceType credentialsDomain.ReferenceType,
	referenceID uuid.UUID,
) error {
	args := m.Called(ctx, referenceType, referenceID)
	return args.Error(0)
}

// MockAuditReporter is a mock implementation of AuditReporter for testing.
type MockAuditReporter struct {
	mock.Mock
}

// Report mocks the Report method of AuditReporter.
func (m *MockAuditReporter) Report(ctx context.Context, event *auditDomain.Event) {
	m.Called(ctx, event)
}
