package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/config"
	"github.com/twincities-service/internal/delivery/http/handler"
	"github.com/twincities-service/internal/delivery/http/middleware"
)

// Server wires the Fiber app, middleware and entity routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	documentHandler      *handler.DocumentHandler
	twinCityHandler      *handler.TwinCityHandler
	indicatorHandler     *handler.IndicatorHandler
	locationHandler      *handler.LocationHandler
	galleryHandler       *handler.GalleryHandler
	collaborationHandler *handler.CollaborationHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	documentHandler *handler.DocumentHandler,
	twinCityHandler *handler.TwinCityHandler,
	indicatorHandler *handler.IndicatorHandler,
	locationHandler *handler.LocationHandler,
	galleryHandler *handler.GalleryHandler,
	collaborationHandler *handler.CollaborationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Twin Cities Platform API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                  app,
		config:               cfg,
		logger:               logger,
		documentHandler:      documentHandler,
		twinCityHandler:      twinCityHandler,
		indicatorHandler:     indicatorHandler,
		locationHandler:      locationHandler,
		galleryHandler:       galleryHandler,
		collaborationHandler: collaborationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Stored uploads referenced by relative URL from records
	s.app.Static("/uploads", s.config.Upload.BaseDir)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Digital collection
	api.Get("/digital-collection", s.documentHandler.List)
	api.Get("/digital-collection/twin-city/:id", s.documentHandler.GetByTwinCity)
	api.Get("/digital-collection/location/:id", s.documentHandler.GetByLocation)
	api.Get("/digital-collection/:id", s.documentHandler.GetByID)
	api.Get("/digital-collection/:id/download", s.documentHandler.Download)
	api.Post("/digital-collection", s.documentHandler.Create)
	api.Put("/digital-collection/:id", s.documentHandler.Update)
	api.Delete("/digital-collection/:id", s.documentHandler.Delete)

	// Twin cities
	api.Get("/twin-cities", s.twinCityHandler.List)
	api.Get("/twin-cities/:id", s.twinCityHandler.GetByID)
	api.Post("/twin-cities", s.twinCityHandler.Create)
	api.Put("/twin-cities/:id", s.twinCityHandler.Update)
	api.Delete("/twin-cities/:id", s.twinCityHandler.Delete)

	// Indicators
	api.Get("/indicators", s.indicatorHandler.List)
	api.Get("/indicators/:id", s.indicatorHandler.GetByID)
	api.Post("/indicators", s.indicatorHandler.Create)
	api.Put("/indicators/:id", s.indicatorHandler.Update)
	api.Delete("/indicators/:id", s.indicatorHandler.Delete)

	// Locations
	api.Get("/locations", s.locationHandler.List)
	api.Get("/locations/:id", s.locationHandler.GetByID)
	api.Post("/locations", s.locationHandler.Create)
	api.Put("/locations/:id", s.locationHandler.Update)
	api.Delete("/locations/:id", s.locationHandler.Delete)

	// Galleries
	api.Get("/galleries", s.galleryHandler.List)
	api.Get("/galleries/:id", s.galleryHandler.GetByID)
	api.Post("/galleries", s.galleryHandler.Create)
	api.Put("/galleries/:id", s.galleryHandler.Update)
	api.Delete("/galleries/:id", s.galleryHandler.Delete)

	// Collaborations
	api.Get("/collaborations", s.collaborationHandler.List)
	api.Get("/collaborations/:id", s.collaborationHandler.GetByID)
	api.Get("/collaborations/:id/files/:file_id/download", s.collaborationHandler.DownloadFile)
	api.Post("/collaborations", s.collaborationHandler.Create)
	api.Put("/collaborations/:id", s.collaborationHandler.Update)
	api.Delete("/collaborations/:id", s.collaborationHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
