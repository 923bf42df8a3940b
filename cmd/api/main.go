package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brsaude/patient-intake/cmd/mainconfig"
	"github.com/brsaude/patient-intake/internal/api/router"
	appconfig "github.com/brsaude/patient-intake/internal/config"
	"github.com/brsaude/patient-intake/internal/http/handlers"
	"github.com/brsaude/patient-intake/internal/observability/metrics"
	"github.com/brsaude/patient-intake/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting patient-intake API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"storage_backend", cfg.StorageBackend,
	)

	repo, err := mainconfig.BuildRepository(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build storage repository", "error", err)
		os.Exit(1)
	}

	var intakeMetrics *metrics.IntakeMetrics
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		intakeMetrics = metrics.NewIntakeMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	patientsHandler := handlers.NewPatientsHandler(repo, logger, intakeMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		Patients:           patientsHandler,
		AdminToken:         cfg.AdminToken,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
