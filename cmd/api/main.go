package main

// @title Twin Cities Platform API
// @version 1.0.0
// @description Backend for the cross-border twin-cities informational platform.
// @description Serves locations, twin-city pairs, comparison indicators, the
// @description digital document collection with tags, photo/video galleries and
// @description public collaboration submissions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/twincities-service/docs/swagger"
	"github.com/twincities-service/internal/config"
	httpDelivery "github.com/twincities-service/internal/delivery/http"
	"github.com/twincities-service/internal/delivery/http/handler"
	"github.com/twincities-service/internal/pkg/logger"
	"github.com/twincities-service/internal/repository/filestore"
	"github.com/twincities-service/internal/repository/mysql"
	"github.com/twincities-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Twin Cities Platform API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to MySQL
	db, err := mysql.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to MySQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MySQL connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Health(ctx); err != nil {
		log.Fatal("MySQL health check failed", zap.Error(err))
	}
	log.Info("Database healthy")

	// 5. File store for uploads
	files, err := filestore.New(cfg.Upload.BaseDir, log)
	if err != nil {
		log.Fatal("Failed to initialize file store", zap.Error(err))
	}

	// 6. Initialize repositories
	documentRepo := mysql.NewDocumentRepository(db)
	twinCityRepo := mysql.NewTwinCityRepository(db)
	indicatorRepo := mysql.NewIndicatorRepository(db)
	locationRepo := mysql.NewLocationRepository(db)
	galleryRepo := mysql.NewGalleryRepository(db)
	collaborationRepo := mysql.NewCollaborationRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	documentUC := usecase.NewDocumentUseCase(documentRepo, twinCityRepo, locationRepo, files, log)
	twinCityUC := usecase.NewTwinCityUseCase(twinCityRepo, documentRepo, indicatorRepo, log)
	indicatorUC := usecase.NewIndicatorUseCase(indicatorRepo, twinCityRepo, log)
	locationUC := usecase.NewLocationUseCase(locationRepo, galleryRepo, documentRepo, files, log)
	galleryUC := usecase.NewGalleryUseCase(galleryRepo, locationRepo, log)
	collaborationUC := usecase.NewCollaborationUseCase(collaborationRepo, files, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	documentHandler := handler.NewDocumentHandler(documentUC, log)
	twinCityHandler := handler.NewTwinCityHandler(twinCityUC, log)
	indicatorHandler := handler.NewIndicatorHandler(indicatorUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)
	galleryHandler := handler.NewGalleryHandler(galleryUC, log)
	collaborationHandler := handler.NewCollaborationHandler(collaborationUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		documentHandler,
		twinCityHandler,
		indicatorHandler,
		locationHandler,
		galleryHandler,
		collaborationHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
