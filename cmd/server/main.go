package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zombar/plagcheck/internal/analyzer"
	"github.com/zombar/plagcheck/internal/api"
	"github.com/zombar/plagcheck/internal/config"
	"github.com/zombar/plagcheck/internal/rephraser"
	"github.com/zombar/plagcheck/pkg/logging"
	"github.com/zombar/plagcheck/pkg/tracing"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("plagcheck service initializing", "version", version)

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName)
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					logger.Error("error shutting down tracer", "error", err)
				}
			}()
			logger.Info("tracing initialized successfully")
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newServerHandler(cfg, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("plagcheck service starting",
			"port", cfg.Port,
			"min_analyze_chars", cfg.MinAnalyzeChars,
			"min_rephrase_chars", cfg.MinRephraseChars,
			"max_body_bytes", cfg.MaxBodyBytes,
			"tracing_enabled", cfg.TracingEnabled,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newServerHandler builds the middleware chain:
// HTTP logging -> panic recovery -> tracing -> API handlers
func newServerHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	apiHandler := api.NewHandler(analyzer.New(), rephraser.New(), api.Options{
		MinAnalyzeChars:  cfg.MinAnalyzeChars,
		MinRephraseChars: cfg.MinRephraseChars,
		MaxBodyBytes:     cfg.MaxBodyBytes,
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		Namespace:        "plagcheck",
		Logger:           logger,
	})

	return logging.HTTPLoggingMiddleware(logger)(
		logging.RecoveryMiddleware(logger)(
			tracing.HTTPMiddleware(cfg.ServiceName)(apiHandler),
		),
	)
}
