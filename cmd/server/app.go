package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jsvoboda/accounts-api/internal/config"
	"github.com/jsvoboda/accounts-api/internal/platform/logger"
	"github.com/jsvoboda/accounts-api/internal/platform/postgres"
	"github.com/jsvoboda/accounts-api/internal/service"
	"github.com/jsvoboda/accounts-api/internal/service/auth"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// application holds the wired dependencies of the server process.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB
	accountStore   store.AccountStore
	accountService service.AccountService
	verifier       auth.PasswordVerifier
}

// newApplication loads configuration, sets up logging, connects to the
// database, applies pending migrations and constructs all services through
// explicit dependency injection.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	accountStore := postgres.NewPostgresAccountStore(db, appLogger)
	hasher := auth.NewBcryptHasher(0) // 0 falls back to bcrypt.DefaultCost
	accountService := service.NewAccountService(
		accountStore,
		auth.NewUsernameOwnershipChecker(),
		hasher,
		store.NewTxRunner(db),
		appLogger,
	)

	return &application{
		config:         cfg,
		logger:         appLogger,
		db:             db,
		accountStore:   accountStore,
		accountService: accountService,
		verifier:       hasher,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
