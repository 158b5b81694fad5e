package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the long-lived dependencies of the server process.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	userStore  store.UserStore
	identities store.IdentityStore
	taskStore  store.TaskStore
	jwtService auth.JWTService
	registry   *prometheus.Registry
}

func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		userStore:  postgres.NewPostgresUserStore(db, logger),
		identities: postgres.NewPostgresIdentityStore(db, logger),
		taskStore:  postgres.NewPostgresTaskStore(db, logger),
		jwtService: jwtService,
		registry:   newRegistry(),
	}, nil
}

// newRegistry returns a registry carrying the runtime collectors. HTTP
// collectors are added when the router is built.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (app *application) routerDeps() routerDeps {
	return routerDeps{
		Config:     app.config,
		Logger:     app.logger,
		DB:         app.db,
		Users:      app.userStore,
		Identities: app.identities,
		Tasks:      app.taskStore,
		JWT:        app.jwtService,
		Registry:   app.registry,
	}
}

func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
