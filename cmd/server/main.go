// Command server runs the task management API and its database migrations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// loadFunc loads configuration; replaced in tests.
type loadFunc func() (*config.Config, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(config.Load).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(load loadFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo-api",
		Short: "Task management REST API",
		Long: `todo-api serves a JSON REST API for managing personal tasks.

Configuration is read from config.yaml in the working directory and from
TODO_* environment variables (DATABASE_URL and JWT_SECRET are also accepted).
Running without a subcommand starts the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), load)
		},
	}

	root.AddCommand(newServeCommand(load), newMigrateCommand(load))
	return root
}

func newServeCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), load)
		},
	}
}

func newMigrateCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <" + strings.Join(postgres.MigrationCommands, "|") + "> [args]",
		Short: "Run database migrations",
		Args:  validateMigrateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), load, args[0], args[1:]...)
		},
	}
}

func validateMigrateArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("migration command required, one of: %s",
			strings.Join(postgres.MigrationCommands, ", "))
	}
	if !slices.Contains(postgres.MigrationCommands, args[0]) {
		return fmt.Errorf("unknown migration command %q, expected one of: %s",
			args[0], strings.Join(postgres.MigrationCommands, ", "))
	}
	return nil
}

// setup loads configuration and builds the process logger.
func setup(load loadFunc) (*config.Config, *slog.Logger, error) {
	cfg, err := load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, log, nil
}

func runServe(ctx context.Context, load loadFunc) error {
	cfg, log, err := setup(load)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer app.cleanup()

	return app.serve(ctx)
}

func runMigrate(ctx context.Context, load loadFunc, command string, args ...string) error {
	cfg, log, err := setup(load)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", "error", cerr)
		}
	}()

	return postgres.Migrate(ctx, db, command, log, args...)
}
