package main

// @title Namibia Tourism Portal API
// @version 1.0.0
// @description API туристического портала Намибии. Справочник 14 регионов, каталог объектов по категориям, маршруты с остановками, маршрутная карта, чат-бот и административное управление контентом.
// @description
// @description Основные возможности:
// @description - Регионы и определение региона по названию места
// @description - Каталог объектов с фильтрами и медиафайлами
// @description - Маршруты, программа по дням и данные для карты
// @description - Чат-бот по турам и регионам
// @description - Обратная связь и управление контентом для администраторов

// @contact.name API Support
// @contact.email support@tourism-portal.na

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourism-portal/docs"
	"github.com/tourism-portal/internal/config"
	httpDelivery "github.com/tourism-portal/internal/delivery/http"
	"github.com/tourism-portal/internal/delivery/http/handler"
	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/infrastructure/gemini"
	"github.com/tourism-portal/internal/infrastructure/mailer"
	"github.com/tourism-portal/internal/pkg/logger"
	"github.com/tourism-portal/internal/pkg/ratelimit"
	"github.com/tourism-portal/internal/repository/cache"
	"github.com/tourism-portal/internal/repository/postgres"
	redisRepo "github.com/tourism-portal/internal/repository/redis"
	"github.com/tourism-portal/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Namibia Tourism Portal API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("mail_outbox", cfg.Mail.UseOutbox),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db, postgres.MigrateUp, 0, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	tokenRepo := cache.NewTokenRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	categoryRepo := postgres.NewCategoryRepository(db, log)
	listingRepo := postgres.NewListingRepository(db, log)
	mediaRepo := postgres.NewMediaRepository(db, log)
	routeRepo := postgres.NewRouteRepository(db, log)
	statsRepo := postgres.NewStatsRepository(db, log)
	userRepo := postgres.NewUserRepository(db, log)
	chatRepo := postgres.NewChatRepository(db, log)
	contactRepo := postgres.NewContactRepository(db, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	registry := domain.DefaultRegionRegistry()

	smtpMailer, err := mailer.NewSMTPMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	notificationUC := usecase.NewNotificationUseCase(
		streamRepo,
		smtpMailer,
		log,
		cfg.Mail.UseOutbox,
		cfg.Server.PublicURL,
		cfg.Mail.AdminAddress,
	)

	regionUC := usecase.NewRegionUseCase(registry)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, cacheRepo, log, cfg.Cache.CategoriesCacheTTL)
	listingUC := usecase.NewListingUseCase(listingRepo, mediaRepo, cacheRepo, registry, log, cfg.Cache.ListingsCacheTTL)
	routeUC := usecase.NewRouteUseCase(routeRepo, cacheRepo, log, cfg.Cache.RoutesCacheTTL)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, registry, log, cfg.Cache.StatsCacheTTL)
	adminUC := usecase.NewAdminUseCase(categoryRepo, listingRepo, mediaRepo, cacheRepo, registry, log)
	contactUC := usecase.NewContactUseCase(contactRepo, notificationUC, log)

	authUC := usecase.NewAuthUseCase(
		userRepo,
		tokenRepo,
		notificationUC,
		log,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Auth.PasswordResetTTL,
	)
	if cfg.Auth.AdminEmail != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			log.Fatal("Failed to ensure admin account", zap.Error(err))
		}
	}

	responder := newChatResponder(cfg, registry, routeRepo, listingRepo, log)
	chatbotUC := usecase.NewChatbotUseCase(
		chatRepo,
		responder,
		ratelimit.NewPerMinute(cfg.Chatbot.RatePerMinute),
		log,
		cfg.Chatbot.HistoryLimit,
		cfg.Chatbot.RequestTimeout,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Region:   handler.NewRegionHandler(regionUC, log),
		Category: handler.NewCategoryHandler(categoryUC, log),
		Listing:  handler.NewListingHandler(listingUC, log),
		Route:    handler.NewRouteHandler(routeUC, log),
		Admin:    handler.NewAdminHandler(adminUC, log),
		Chatbot:  handler.NewChatbotHandler(chatbotUC, log),
		Auth:     handler.NewAuthHandler(authUC, log),
		Contact:  handler.NewContactHandler(contactUC, log),
		Stats:    handler.NewStatsHandler(statsUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handlers,
		authUC,
		ratelimit.NewPerMinute(cfg.RateLimit.ContactPerMinute),
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// newChatResponder выбирает Gemini, если задан ключ, иначе ответы по ключевым словам
func newChatResponder(
	cfg *config.Config,
	registry *domain.RegionRegistry,
	routeRepo repository.RouteRepository,
	listingRepo repository.ListingRepository,
	log *zap.Logger,
) repository.ChatResponder {
	if cfg.Chatbot.GeminiAPIKey == "" {
		log.Info("Gemini API key not set, using keyword responder")
		return usecase.NewKeywordResponder(registry, routeRepo, listingRepo)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	responder, err := gemini.NewResponder(ctx, cfg.Chatbot, registry, log)
	if err != nil {
		log.Warn("Failed to initialize Gemini responder, falling back to keywords", zap.Error(err))
		return usecase.NewKeywordResponder(registry, routeRepo, listingRepo)
	}
	return responder
}
