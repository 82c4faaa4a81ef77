// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/idforge/credentials/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "credentials",
		Usage:   "Credential lifecycle service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "process-events",
				Usage: "Drain pending outbox events once and exit",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunProcessEvents(ctx)
				},
			},
			{
				Name:  "renew-secret",
				Usage: "Regenerate the value of a client secret",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "domain",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Security domain ID",
					},
					&cli.StringFlag{
						Name:     "application",
						Aliases:  []string{"a"},
						Required: true,
						Usage:    "Application ID",
					},
					&cli.StringFlag{
						Name:     "secret",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Client secret ID",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunRenewSecret(
						ctx,
						cmd.String("domain"),
						cmd.String("application"),
						cmd.String("secret"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
