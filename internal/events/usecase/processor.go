// Package usecase implements the outbox event processing loop that notifies
// dependent components after credential mutations.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/idforge/credentials/internal/database"
	"github.com/idforge/credentials/internal/events/domain"
)

// Config holds outbox processor configuration.
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// OutboxEventRepository defines outbox event repository operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
}

// Publisher delivers an outbox event to its consumers.
type Publisher interface {
	Publish(ctx context.Context, event *domain.OutboxEvent) error
}

// Processor defines the interface for the outbox event loop.
type Processor interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// processor drains pending outbox events and hands them to the publisher.
type processor struct {
	config     Config
	txManager  database.TxManager
	outboxRepo OutboxEventRepository
	publisher  Publisher
	logger     *slog.Logger
}

// NewProcessor creates a new outbox Processor.
func NewProcessor(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	publisher Publisher,
	logger *slog.Logger,
) Processor {
	return &processor{
		config:     config,
		txManager:  txManager,
		outboxRepo: outboxRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Start runs the processing loop until the context is cancelled.
func (p *processor) Start(ctx context.Context) error {
	p.logger.Info("starting outbox event processor",
		slog.Duration("interval", p.config.Interval),
		slog.Int("batch_size", p.config.BatchSize),
	)

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("stopping outbox event processor")
			return ctx.Err()
		case <-ticker.C:
			if err := p.ProcessEvents(ctx); err != nil {
				p.logger.Error("failed to process events", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents drains one batch of pending events within a transaction.
func (p *processor) ProcessEvents(ctx context.Context) error {
	return p.txManager.WithTx(ctx, func(txCtx context.Context) error {
		events, err := p.outboxRepo.GetPendingEvents(txCtx, p.config.BatchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		p.logger.Info("processing events", slog.Int("count", len(events)))

		for _, event := range events {
			if err := p.publisher.Publish(txCtx, event); err != nil {
				p.logger.Error("failed to publish event",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", event.EventType),
					slog.Any("error", err),
				)

				event.Retries++
				errorMsg := err.Error()
				event.LastError = &errorMsg

				if event.Retries >= p.config.MaxRetries {
					event.Status = domain.OutboxEventStatusFailed
				}

				if err := p.outboxRepo.Update(txCtx, event); err != nil {
					return err
				}
				continue
			}

			now := time.Now().UTC()
			event.Status = domain.OutboxEventStatusProcessed
			event.ProcessedAt = &now

			if err := p.outboxRepo.Update(txCtx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

// LoggingPublisher is a Publisher that logs reload notifications. Deployments
// with a message broker replace it with a broker-backed publisher.
type LoggingPublisher struct {
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

// Publish logs the event so operators can trace reload notifications.
func (p *LoggingPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	var payload map[string]any
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return err
	}

	switch event.EventType {
	case domain.EventApplicationSecretsChanged:
		p.logger.Info("application secrets changed",
			slog.String("aggregate_id", event.AggregateID.String()),
			slog.Any("payload", payload),
		)
	default:
		p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
	}

	return nil
}
