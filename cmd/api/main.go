package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/api/handlers"
	"github.com/healthbot/backend/internal/cache/redis"
	"github.com/healthbot/backend/internal/engine"
	"github.com/healthbot/backend/internal/knowledge"
	"github.com/healthbot/backend/internal/llm"
	"github.com/healthbot/backend/internal/metrics"
	"github.com/healthbot/backend/internal/middleware/identity"
	"github.com/healthbot/backend/internal/middleware/ratelimit"
	"github.com/healthbot/backend/internal/middleware/security"
	"github.com/healthbot/backend/internal/storage/sqlite"
	"github.com/healthbot/backend/pkg/config"
	appLogger "github.com/healthbot/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting HealthBot API Server")

	metrics.Init()

	sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	err = sqliteClient.InitSchema()
	if err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	if cfg.Seed.DemoUser {
		if _, err := sqliteClient.SeedDemoUser(); err != nil {
			appLogger.Warn("Failed to seed demo user", zap.Error(err))
		}
	}

	var userCache engine.UserCache
	var profileCache handlers.ProfileCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.UserTTLSec)*time.Second,
		)
		if err != nil {
			appLogger.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisClient.Close()

		userCache = redisClient
		profileCache = redisClient
	}

	llmClient := llm.NewClient(
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.Temperature,
		cfg.LLM.MaxTokens,
		cfg.LLM.TimeoutSec,
	)

	kb := knowledge.Default()
	appLogger.Info("Knowledge base loaded", zap.Int("conditions", kb.Len()))

	responseEngine := engine.NewEngine(sqliteClient, sqliteClient, llmClient, kb, userCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	rateLimiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.MaxRequestsPerMinute,
		Logger:               appLogger.GetLogger(),
	})
	defer rateLimiter.Stop()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
		AllowMethods: "GET, POST, PUT, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(rateLimiter.Middleware())

	chatHandler := handlers.NewChatHandler(responseEngine)
	profileHandler := handlers.NewProfileHandler(sqliteClient, profileCache)

	api := app.Group("/api/v1")

	authed := api.Group("", identity.Middleware())
	authed.Post("/chat", chatHandler.HandleChat)
	authed.Get("/chat/history", chatHandler.GetHistory)
	authed.Get("/user/profile", profileHandler.GetProfile)
	authed.Put("/user/profile", profileHandler.UpdateProfile)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api.Get("/ready", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	})

	api.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
