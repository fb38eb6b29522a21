package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/catalogadmin/console/internal/api"
	"github.com/catalogadmin/console/internal/infrastructure/db/memory"
	"github.com/catalogadmin/console/internal/pkg/config"
	"github.com/catalogadmin/console/pkg/logger"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		Output: os.Stdout,
	})

	// 2. Setup metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 3. Setup router over the in-memory store
	e := api.NewRouter(memory.NewStore(), api.RouterConfig{
		JWTSecret: cfg.API.JWTSecret,
		TokenTTL:  cfg.API.TokenTTL,
		Logger:    logger.For("catalog-api"),
		Metrics:   reg,
	})

	server := &http.Server{
		Addr:              ":" + cfg.API.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 4. Run server with graceful shutdown
	go func() {
		log.Info().Str("port", cfg.API.Port).Msg("catalog api listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
