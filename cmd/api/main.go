// @title Event Registration API
// @version 1.0
// @description Mock registration server exposing events and sessions.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventregistration/config"
	deliveryhttp "eventregistration/internal/delivery/http"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/domain"
	"eventregistration/internal/repository/postgres"
	"eventregistration/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := cfg.NewLogger()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	for _, ref := range catalog.DanglingSessionIDs() {
		logger.Warn("event references unknown session", "event_id", ref.EventID, "session_id", ref.SessionID)
	}

	svc := services.NewRegistrationService(catalog, logger)
	handler := deliveryhttp.NewHandler(logger, cfg.AllowedOrigins, controllers.NewRegistrationController(logger, svc))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, `{"message":"Request timed out"}`),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("mock server is running", "port", cfg.Port, "events", len(catalog.Events()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	}
}

// loadCatalog reads the catalog from Postgres when DATABASE_URL is set and
// falls back to the built-in seed otherwise.
func loadCatalog(cfg *config.Config, logger *slog.Logger) (*domain.Catalog, error) {
	if cfg.DBUrl == "" {
		logger.Info("using built-in catalog")
		return domain.DefaultCatalog(), nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	catalog, err := postgres.NewCatalogRepository(db).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("loaded catalog from database", "events", len(catalog.Events()), "sessions", len(catalog.Sessions()))
	return catalog, nil
}
