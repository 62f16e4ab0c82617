package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/config"
	"github.com/tourism-portal/internal/delivery/http/handler"
	"github.com/tourism-portal/internal/delivery/http/middleware"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/ratelimit"
	"github.com/tourism-portal/internal/pkg/utils"
)

// Handlers - набор обработчиков, которые монтирует сервер
type Handlers struct {
	Region   *handler.RegionHandler
	Category *handler.CategoryHandler
	Listing  *handler.ListingHandler
	Route    *handler.RouteHandler
	Admin    *handler.AdminHandler
	Chatbot  *handler.ChatbotHandler
	Auth     *handler.AuthHandler
	Contact  *handler.ContactHandler
	Stats    *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	handlers       Handlers
	tokens         middleware.TokenParser
	contactLimiter *ratelimit.KeyedLimiter
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	tokens middleware.TokenParser,
	contactLimiter *ratelimit.KeyedLimiter,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Namibia Tourism Portal",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		handlers:       handlers,
		tokens:         tokens,
		contactLimiter: contactLimiter,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.CORSOriginList()))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/health", healthCheck)

	api := s.app.Group("/api/v1")
	api.Get("/health", healthCheck)

	h := s.handlers

	// Regions: resolve регистрируется раньше /:id
	api.Get("/regions", h.Region.List)
	api.Get("/regions/resolve", h.Region.Resolve)
	api.Get("/regions/:id", h.Region.Get)

	api.Get("/categories", h.Category.List)
	api.Get("/categories/:slug", h.Category.GetBySlug)

	api.Get("/listings", h.Listing.List)
	api.Get("/listings/:id/media", h.Listing.GetMedia)
	api.Get("/listings/:slug", h.Listing.GetBySlug)

	api.Get("/routes", h.Route.List)
	api.Get("/routes/:id/stops", h.Route.GetStops)
	api.Get("/routes/:slug/itinerary", h.Route.Itinerary)
	api.Get("/routes/:slug/map", h.Route.Map)
	api.Get("/routes/:slug", h.Route.GetBySlug)

	api.Post("/chatbot/messages", h.Chatbot.SendMessage)

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", middleware.RequireAuth(s.tokens), h.Auth.Logout)
	auth.Post("/password-reset", h.Auth.RequestPasswordReset)
	auth.Post("/password-reset/confirm", h.Auth.ConfirmPasswordReset)

	api.Post("/contact", middleware.RateLimit(s.contactLimiter), h.Contact.Submit)

	api.Get("/stats", h.Stats.GetStatistics)

	admin := api.Group("/admin", middleware.RequireAuth(s.tokens), middleware.RequireAdmin())
	admin.Get("/categories", h.Admin.ListCategories)
	admin.Post("/categories", h.Admin.CreateCategory)
	admin.Put("/categories/:id", h.Admin.UpdateCategory)
	admin.Delete("/categories/:id", h.Admin.DeleteCategory)

	admin.Get("/listings", h.Admin.ListListings)
	admin.Post("/listings", h.Admin.CreateListing)
	admin.Put("/listings/:id", h.Admin.UpdateListing)
	admin.Delete("/listings/:id", h.Admin.DeleteListing)

	admin.Get("/media", h.Admin.ListMedia)
	admin.Post("/media", h.Admin.CreateMedia)
	admin.Delete("/media/:id", h.Admin.DeleteMedia)

	s.app.Use(func(c *fiber.Ctx) error {
		return utils.SendError(c, errors.RecoveryPath(errors.ErrNotFound, "/"))
	})
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами, в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.As(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		switch code {
		case fiber.StatusNotFound:
			return utils.SendError(c, errors.RecoveryPath(errors.ErrNotFound, "/"))
		case fiber.StatusInternalServerError:
			return utils.SendError(c, errors.ErrInternalServer)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: &errors.AppError{
				Code:       "HTTP_ERROR",
				Message:    err.Error(),
				StatusCode: code,
			},
		})
	}
}
