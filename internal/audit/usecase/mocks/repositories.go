// Package mocks provides mock implementations for testing the audit reporter.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
)

// MockEventRepository is a mock implementation of EventRepository for testing.
type MockEventRepository struct {
	mock.Mock
}

// Create mocks the Create method of EventRepository.
func (m *MockEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
