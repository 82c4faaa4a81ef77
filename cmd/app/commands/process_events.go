package commands

import (
	"context"
	"fmt"

	"github.com/idforge/credentials/internal/app"
	"github.com/idforge/credentials/internal/config"
)

// RunProcessEvents drains the pending outbox events once and exits. Useful for
// deployments that run the processor as a scheduled job instead of inside the
// server process.
func RunProcessEvents(ctx context.Context) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	processor, err := container.OutboxProcessor()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox processor: %w", err)
	}

	if err := processor.ProcessEvents(ctx); err != nil {
		return fmt.Errorf("failed to process outbox events: %w", err)
	}

	logger.Info("outbox events processed")
	return nil
}
