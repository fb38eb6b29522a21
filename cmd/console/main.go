package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/catalogadmin/console/internal/console"
	"github.com/catalogadmin/console/internal/core/service"
	"github.com/catalogadmin/console/internal/infrastructure/apiclient"
	"github.com/catalogadmin/console/internal/pkg/config"
	"github.com/catalogadmin/console/internal/pkg/validation"
	"github.com/catalogadmin/console/pkg/logger"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr, the view owns stdout.
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.Console.APIURL,
		Timeout:   cfg.Console.Timeout,
		UserAgent: "catalog-console",
	}, logger.Get())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid CATALOG_API_URL")
	}

	if cfg.Console.MetricsAddr != "" {
		metricsServer := &http.Server{
			Addr:              cfg.Console.MetricsAddr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics listener failed")
			}
		}()
		defer metricsServer.Close()
	}

	term := console.NewTerminal(os.Stdout)
	session := service.NewSession()
	valid := validation.New()
	catalog := service.NewCatalog(client, session, term, valid, logger.Get())
	access := service.NewAccess(client, session, term, valid, catalog, logger.Get())
	shell := console.NewShell(os.Stdin, term, access, catalog, session, logger.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// Unblocks the shell's pending read.
		<-ctx.Done()
		os.Stdin.Close()
	}()

	log.Debug().Str("api", cfg.Console.APIURL).Msg("console started")
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("console stopped")
	}
}
