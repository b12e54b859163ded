package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mercus/internal/config"
	"mercus/internal/infra"
	"mercus/internal/router"
	"mercus/internal/store"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, healthCheck, breakerState, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to set up storage")
	}
	log.Info().Str("backend", cfg.StorageBackend).Msg("storage ready")

	r := router.New(cfg, st, healthCheck, breakerState)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("mercus backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// buildStore selects and initializes the storage backend, returning it along
// with the health probe and circuit breaker reporter the /health endpoint uses.
func buildStore(ctx context.Context, cfg *config.Config) (store.Store, func(context.Context) error, func() string, error) {
	switch cfg.StorageBackend {
	case config.BackendSheets:
		client, err := infra.NewSheetsClient(ctx, cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID)
		if err != nil {
			return nil, nil, nil, err
		}
		sheets := store.NewSheets(client, cfg.SheetsCacheTTL())
		if err := sheets.Init(ctx); err != nil {
			return nil, nil, nil, err
		}
		check := func(context.Context) error {
			if client.BreakerState() == infra.CBOpen {
				return infra.ErrCircuitOpen
			}
			return nil
		}
		breaker := func() string { return client.BreakerState().String() }
		return sheets, check, breaker, nil

	case config.BackendPostgres:
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		check := func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		return store.NewPostgres(db), check, nil, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}
