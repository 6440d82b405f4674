// Package internal contains core application functionality
package internal

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/gofiber/fiber/v2"

	"linkpulse/internal/analytics"
	"linkpulse/internal/config"
	"linkpulse/internal/database"
	"linkpulse/internal/events"
	httpapi "linkpulse/internal/http"
	"linkpulse/internal/links"
	"linkpulse/internal/logging"
	"linkpulse/internal/pkg/geoip"
)

// Application wires config, logging, storage, and the HTTP server together.
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	DBManager *database.DBManager
	Server    *fiber.App
}

// NewApp creates a new application instance with default settings.
func NewApp() (*Application, error) {
	cfg := config.GetConfig()
	return NewAppWithConfig(cfg)
}

// NewAppWithConfig creates a new application with the provided config.
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	logger := logging.NewLogger(cfg)
	geoip.InitLogger(logger)

	dbManager := database.NewDBManager(cfg, logger)
	if err := dbManager.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db := dbManager.GetConnection()
	svc := analytics.NewService(events.NewStore(db), links.NewDirectory(db), logger)

	server := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: cfg.IsProduction(),
	})
	httpapi.MountRoutes(server, httpapi.NewHandlers(db, svc, logger))

	return &Application{
		Config:    cfg,
		Logger:    logger,
		DBManager: dbManager,
		Server:    server,
	}, nil
}

// MigrateDatabase runs schema migrations.
func (a *Application) MigrateDatabase() error {
	return a.DBManager.MigrateDatabase()
}

// StartAsync begins serving HTTP without blocking the caller.
func (a *Application) StartAsync() error {
	go func() {
		addr := ":" + a.Config.AppPort
		if err := a.Server.Listen(addr); err != nil {
			a.Logger.Error("HTTP server stopped", slog.Any("error", err))
		}
	}()
	return nil
}

// Shutdown drains the HTTP server and closes the database.
func (a *Application) Shutdown(ctx context.Context) error {
	if err := a.Server.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return a.DBManager.Close()
}
