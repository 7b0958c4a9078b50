package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ceremonia/internal/api/v1/router"
	"ceremonia/internal/config"
	"ceremonia/internal/logger"
	"ceremonia/internal/store"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, relying on environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db := store.Seeded()
	log.Info().Interface("rows", db.Counts()).Msg("In-memory store seeded")

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.New(cfg, log, db),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}
