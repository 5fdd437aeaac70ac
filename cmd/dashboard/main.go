package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tellwe/obedir-qr-codes/internal/archive"
	"github.com/Tellwe/obedir-qr-codes/internal/config"
	"github.com/Tellwe/obedir-qr-codes/internal/database"
	"github.com/Tellwe/obedir-qr-codes/internal/handler"
	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/passportapi"
	"github.com/Tellwe/obedir-qr-codes/internal/repository"
	"github.com/Tellwe/obedir-qr-codes/internal/router"
	"github.com/Tellwe/obedir-qr-codes/internal/service"
	"github.com/Tellwe/obedir-qr-codes/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting passport dashboard")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool and the passport index table
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	indexRepo := repository.NewIndexRepository(pool, logger)

	// Initialize QR archive with S3 and local fallback
	fileStore := archive.NewFileStore(cfg.Archive.Dir, logger)
	var s3Store archive.Store

	if cfg.S3.Enabled {
		s3Store, err = archive.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 archive, falling back to local file system only")
			s3Store = nil
		}
	} else {
		logger.Info().Str("dir", cfg.Archive.Dir).Msg("using local file system for QR images (S3 disabled)")
	}
	qrStore := archive.NewFallbackStore(s3Store, fileStore, cfg.S3.Enabled, logger)

	// Initialize the passport API client and service
	client := passportapi.NewClient(cfg.PassportAPI.BaseURL, cfg.PassportAPI.RequestTimeout(), logger)
	passportService := service.NewPassportService(client, indexRepo, qrStore, service.Options{
		PublicBaseURL: cfg.Server.PublicBaseURL,
		Company: model.CompanyInfo{
			Name:    cfg.Company.Name,
			Website: cfg.Company.Website,
			Support: cfg.Company.Support,
		},
	}, logger)

	// Initialize HTTP handlers
	renderer, err := web.NewRenderer(logger)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	mux := router.New(router.Handlers{
		Dashboard: handler.NewDashboardHandler(passportService, renderer, cfg.Server.PublicBaseURL, logger),
		Public:    handler.NewPublicHandler(passportService, renderer, logger),
		Product:   handler.NewProductHandler(passportService, logger),
	}, cfg.Auth, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("passport_api", cfg.PassportAPI.BaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
