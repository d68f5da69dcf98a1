package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spreadscan/internal/config"
	"spreadscan/internal/database"
	"spreadscan/internal/events"
	"spreadscan/internal/logger"
	"spreadscan/internal/router"
	"spreadscan/internal/services"
	"spreadscan/internal/validator"

	_ "spreadscan/internal/docs" // Import swagger docs
)

// @title           SpreadScan API
// @version         1.0
// @description     SpreadScan ranks and filters options spreads produced by an upstream scanner.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pipeline API key.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Kafka is optional: without brokers scans are not announced and the
	// pipeline HTTP endpoint is the only ingestion path.
	var publisher services.ScanEventPublisher = events.NoopPublisher{}
	if appConfig.KafkaEnabled() {
		scanPublisher := events.NewScanPublisher(appConfig.KafkaBrokers, appConfig.KafkaScansTopic)
		defer scanPublisher.Close()
		publisher = scanPublisher
	}

	// Initialize services
	db := dbManager.DB()
	spreadService := services.NewSpreadService(db)
	scannerService := services.NewScannerService(db, spreadService, publisher, services.ScannerOptions{
		ScannerPoolLimit:     appConfig.ScannerPoolLimit,
		OpportunityPoolLimit: appConfig.OpportunityPoolLimit,
		AnalyticsPoolLimit:   appConfig.AnalyticsPoolLimit,
		ScanDelay:            appConfig.ScanDelay,
	})

	if appConfig.KafkaEnabled() {
		consumer := events.NewSpreadConsumer(appConfig.KafkaBrokers, appConfig.KafkaSpreadsTopic, appConfig.KafkaGroupID, spreadService)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Errorw("spread consumer exited", "error", err)
			}
		}()
		log.Infow("Kafka enabled", "brokers", appConfig.KafkaBrokers, "spreads_topic", appConfig.KafkaSpreadsTopic)
	}

	engine := router.New(router.Services{
		Users:   services.NewUserService(db),
		Spreads: spreadService,
		Scanner: scannerService,
		Filters: services.NewFilterService(db),
		Audit:   services.NewAuditService(db),
	}, router.Options{
		PipelineAPIKey: appConfig.PipelineAPIKey,
		Swagger:        true,
		RequestLogging: true,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting SpreadScan server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
