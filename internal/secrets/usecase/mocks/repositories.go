// Package mocks provides mock implementations for testing the client secret use case.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	eventsDomain "github.com/idforge/credentials/internal/events/domain"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository for testing.
type MockApplicationRepository struct {
	mock.Mock
}

// Get mocks the Get method of ApplicationRepository.
func (m *MockApplicationRepository) Get(ctx context.Context, applicationID uuid.UUID) (*identityDomain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Application), args.Error(1)
}

// Update mocks the Update method of ApplicationRepository.
func (m *MockApplicationRepository) Update(ctx context.Context, application *identityDomain.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository for testing.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method of OutboxEventRepository.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *eventsDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
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
