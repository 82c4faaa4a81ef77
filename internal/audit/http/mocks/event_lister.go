// Package mocks provides mock implementations for testing the audit HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
)

// MockEventLister is a mock implementation of EventLister for testing.
type MockEventLister struct {
	mock.Mock
}

// List mocks the List method of EventLister.
func (m *MockEventLister) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.Event, error) {
	args := m.Called(ctx, offset, limit, createdAtFrom, createdAtTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Event), args.Error(1)
}
