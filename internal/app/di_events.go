package app

import (
	"fmt"
	"sync"

	eventsRepository "github.com/idforge/credentials/internal/events/repository"
	eventsUseCase "github.com/idforge/credentials/internal/events/usecase"
	secretsUseCase "github.com/idforge/credentials/internal/secrets/usecase"
)

// eventsComponents holds the lazily initialized outbox event layer.
type eventsComponents struct {
	outboxRepoInit sync.Once
	processorInit  sync.Once

	outboxRepo *eventsRepository.PostgreSQLOutboxRepository
	processor  eventsUseCase.Processor
}

// OutboxRepository returns the outbox event repository instance.
func (c *Container) OutboxRepository() (secretsUseCase.OutboxEventRepository, error) {
	c.events.outboxRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["outboxRepo"] = fmt.Errorf("failed to get database for outbox repository: %w", err)
			return
		}
		c.events.outboxRepo = eventsRepository.NewPostgreSQLOutboxRepository(db)
	})
	if err, exists := c.initErrors["outboxRepo"]; exists {
		return nil, err
	}
	return c.events.outboxRepo, nil
}

// OutboxProcessor returns the outbox event processor.
func (c *Container) OutboxProcessor() (eventsUseCase.Processor, error) {
	c.events.processorInit.Do(func() {
		// Initializes the repository through OutboxRepository so both share one instance.
		if _, err := c.OutboxRepository(); err != nil {
			c.initErrors["outboxProcessor"] = fmt.Errorf("failed to get outbox repository for outbox processor: %w", err)
			return
		}

		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["outboxProcessor"] = fmt.Errorf("failed to get tx manager for outbox processor: %w", err)
			return
		}

		logger := c.Logger()
		c.events.processor = eventsUseCase.NewProcessor(
			eventsUseCase.Config{
				Interval:   c.config.OutboxInterval,
				BatchSize:  c.config.OutboxBatchSize,
				MaxRetries: c.config.OutboxMaxRetries,
			},
			txManager,
			c.events.outboxRepo,
			eventsUseCase.NewLoggingPublisher(logger),
			logger,
		)
	})
	if err, exists := c.initErrors["outboxProcessor"]; exists {
		return nil, err
	}
	return c.events.processor, nil
}
