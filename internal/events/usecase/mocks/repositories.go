// Package mocks provides mock implementations for testing the outbox processor.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	eventsDomain "github.com/idforge/credentials/internal/events/domain"
)

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository for testing.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method of OutboxEventRepository.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *eventsDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// GetPendingEvents mocks the GetPendingEvents method of OutboxEventRepository.
func (m *MockOutboxEventRepository) GetPendingEvents(ctx context.Context, limit int) ([]*eventsDomain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*eventsDomain.OutboxEvent), args.Error(1)
}

// Update mocks the Update method of OutboxEventRepository.
func (m *MockOutboxEventRepository) Update(ctx context.Context, event *eventsDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockPublisher is a mock implementation of Publisher for testing.
type MockPublisher struct {
	mock.Mock
}

// Publish mocks the Publish method of Publisher.
func (m *MockPublisher) Publish(ctx context.Context, event *eventsDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
