package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/config"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/database"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/health"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/logger"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/middleware"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/server"
	authhandler "github.com/quangnguyen9723/finance-manager/services/auth/handler"
	authrepository "github.com/quangnguyen9723/finance-manager/services/auth/repository"
	authusecase "github.com/quangnguyen9723/finance-manager/services/auth/usecase"
	"github.com/quangnguyen9723/finance-manager/services/transaction/handler"
	"github.com/quangnguyen9723/finance-manager/services/transaction/repository"
	"github.com/quangnguyen9723/finance-manager/services/transaction/usecase"
)

func main() {
	appName := "finance-manager"
	configPath := "config/finance.env"
	configs := config.InitConfig(configPath)

	// Initialize Zap logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Apply schema migrations
	if err := postgresClient.RunMigrations(); err != nil {
		zapLogger.Fatal("Failed to run migrations", logger.Err(err))
	}

	// Initialize Redis client for the token denylist
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize repositories
	userRepo := authrepository.NewUserRepository(postgresClient.GetDB())
	revocationRepo := authrepository.NewRevocationRepository(redisClient)
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())

	// Initialize the identity verifier singleton
	identity.Init(identity.NewJWTVerifier(configs.JWT, revocationRepo))
	verifier := identity.Default()

	// Initialize use cases
	authUC := authusecase.NewAuthUC(configs.JWT, userRepo, revocationRepo)
	transactionUC := usecase.NewTransactionUC(transactionRepo)

	// Initialize handlers
	authHandler := authhandler.NewAuthHandler(authUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, map[string]health.Checker{
		"postgres": postgresClient,
		"redis":    redisClient,
	})

	// Register API routes
	authHandler.RegisterRoutes(e, verifier)
	transactionHandler.RegisterRoutes(e, verifier)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(
		e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
