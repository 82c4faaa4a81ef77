package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	databaseMocks "github.com/idforge/credentials/internal/database/mocks"
	"github.com/idforge/credentials/internal/events/domain"
	"github.com/idforge/credentials/internal/events/usecase/mocks"
)

func newTestProcessor(
	t *testing.T,
	config Config,
) (Processor, *mocks.MockOutboxEventRepository, *mocks.MockPublisher) {
	t.Helper()

	mockRepo := &mocks.MockOutboxEventRepository{}
	mockPublisher := &mocks.MockPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p := NewProcessor(config, databaseMocks.NewMockTxManager(t), mockRepo, mockPublisher, logger)
	return p, mockRepo, mockPublisher
}

// TestProcessor_ProcessEvents tests the ProcessEvents method of processor.
func TestProcessor_ProcessEvents(t *testing.T) {
	ctx := context.Background()
	config := Config{Interval: time.Second, BatchSize: 10, MaxRetries: 3}

	t.Run("Success_MarksEventsProcessed", func(t *testing.T) {
		// Setup mocks
		p, mockRepo, mockPublisher := newTestProcessor(t, config)
		event := domain.NewOutboxEvent(domain.EventApplicationSecretsChanged, "application", uuid.Must(uuid.NewV7()), `{}`)

		// Setup expectations
		mockRepo.On("GetPendingEvents", mock.Anything, 10).Return([]*domain.OutboxEvent{event}, nil).Once()
		mockPublisher.On("Publish", mock.Anything, event).Return(nil).Once()
		mockRepo.On("Update", mock.Anything, event).Return(nil).Once()

		// Execute
		err := p.ProcessEvents(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.OutboxEventStatusProcessed, event.Status)
		require.NotNil(t, event.ProcessedAt)
		mockRepo.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Success_NoPendingEvents", func(t *testing.T) {
		// Setup mocks
		p, mockRepo, mockPublisher := newTestProcessor(t, config)

		// Setup expectations
		mockRepo.On("GetPendingEvents", mock.Anything, 10).Return([]*domain.OutboxEvent{}, nil).Once()

		// Execute
		err := p.ProcessEvents(ctx)

		// Assert
		require.NoError(t, err)
		mockPublisher.AssertNotCalled(t, "Publish")
	})

	t.Run("Success_PublishFailureIncrementsRetries", func(t *testing.T) {
		// Setup mocks
		p, mockRepo, mockPublisher := newTestProcessor(t, config)
		event := domain.NewOutboxEvent(domain.EventApplicationSecretsChanged, "application", uuid.Must(uuid.NewV7()), `{}`)

		// Setup expectations
		mockRepo.On("GetPendingEvents", mock.Anything, 10).Return([]*domain.OutboxEvent{event}, nil).Once()
		mockPublisher.On("Publish", mock.Anything, event).Return(assert.AnError).Once()
		mockRepo.On("Update", mock.Anything, event).Return(nil).Once()

		// Execute
		err := p.ProcessEvents(ctx)

		// Assert
		// A publish failure is retried on the next tick, not surfaced
		require.NoError(t, err)
		assert.Equal(t, domain.OutboxEventStatusPending, event.Status)
		assert.Equal(t, 1, event.Retries)
		require.NotNil(t, event.LastError)
		assert.Equal(t, assert.AnError.Error(), *event.LastError)
		assert.Nil(t, event.ProcessedAt)
	})

	t.Run("Success_MaxRetriesMarksEventFailed", func(t *testing.T) {
		// Setup mocks
		p, mockRepo, mockPublisher := newTestProcessor(t, config)
		event := domain.NewOutboxEvent(domain.EventApplicationSecretsChanged, "application", uuid.Must(uuid.NewV7()), `{}`)
		event.Retries = 2

		// Setup expectations
		mockRepo.On("GetPendingEvents", mock.Anything, 10).Return([]*domain.OutboxEvent{event}, nil).Once()
		mockPublisher.On("Publish", mock.Anything, event).Return(assert.AnError).Once()
		mockRepo.On("Update", mock.Anything, event).Return(nil).Once()

		// Execute
		err := p.ProcessEvents(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.OutboxEventStatusFailed, event.Status)
		assert.Equal(t, 3, event.Retries)
	})

	t.Run("Error_GetPendingEventsFailure", func(t *testing.T) {
		// Setup mocks
		p, mockRepo, mockPublisher := newTestProcessor(t, config)

		// Setup expectations
		mockRepo.On("GetPendingEvents", mock.Anything, 10).Return(nil, assert.AnError).Once()

		// Execute
		err := p.ProcessEvents(ctx)

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
		mockPublisher.AssertNotCalled(t, "Publish")
	})
}

// TestProcessor_Start tests that the processing loop stops on context
// cancellation without leaking its goroutine.
func TestProcessor_Start(t *testing.T) {
	defer goleak.VerifyNone(t)

	config := Config{Interval: 10 * time.Millisecond, BatchSize: 10, MaxRetries: 3}
	p, mockRepo, _ := newTestProcessor(t, config)

	mockRepo.On("GetPendingEvents", mock.Anything, 10).Return([]*domain.OutboxEvent{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Start(ctx)
	}()

	// Let at least one tick run before stopping
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("processor did not stop after context cancellation")
	}
}

// TestLoggingPublisher tests the fallback logging publisher.
func TestLoggingPublisher(t *testing.T) {
	ctx := context.Background()
	publisher := NewLoggingPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("Success", func(t *testing.T) {
		event := domain.NewOutboxEvent(domain.EventApplicationSecretsChanged, "application", uuid.Must(uuid.NewV7()), `{"change":"created"}`)
		assert.NoError(t, publisher.Publish(ctx, event))
	})

	t.Run("Error_MalformedPayload", func(t *testing.T) {
		event := domain.NewOutboxEvent(domain.EventApplicationSecretsChanged, "application", uuid.Must(uuid.NewV7()), `{not json`)
		assert.Error(t, publisher.Publish(ctx, event))
	})
}
