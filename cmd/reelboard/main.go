package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/reelboard/reelboard/internal/pkg/config"
	"github.com/reelboard/reelboard/internal/pkg/database"
	"github.com/reelboard/reelboard/internal/pkg/health"
	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/middleware"
	nsqpkg "github.com/reelboard/reelboard/internal/pkg/nsq"
	"github.com/reelboard/reelboard/services/board"
	"github.com/reelboard/reelboard/services/board/gateway"
	"github.com/reelboard/reelboard/services/board/handler"
	httpHandler "github.com/reelboard/reelboard/services/board/handler/http"
	"github.com/reelboard/reelboard/services/board/repository"
	"github.com/reelboard/reelboard/services/board/usecase"
)

func main() {
	appName := "reelboard"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// The OTP store is Redis-backed when a Redis host is configured and
	// process-local otherwise
	var otpStore board.OTPStore
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		otpStore = repository.NewRedisOTPStore(redisClient)
		zapLogger.Info("Using Redis OTP store", zap.String("host", configs.Redis.Host))
	} else {
		otpStore = repository.NewMemoryOTPStore()
		zapLogger.Info("Using in-memory OTP store")
	}

	// NSQ publishing is optional; without a broker the gateway is a no-op
	var producer *nsqpkg.Producer
	if configs.NSQ.Addr != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Addr)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer producer.Stop()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	posterRepo := repository.NewPosterRepo(postgresClient.GetDB())
	commentRepo := repository.NewCommentRepo(postgresClient.GetDB())

	// Initialize gateways
	boardGW := gateway.NewBoardGW(producer)
	mailer := gateway.NewSMTPMailer(configs.SMTP)

	// Initialize usecase
	boardUC := usecase.NewBoardUC(userRepo, otpStore, posterRepo, commentRepo, mailer, boardGW, configs)

	// Seed the bootstrap admin account
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := boardUC.EnsureDefaultAdmin(ctx); err != nil {
		cancel()
		zapLogger.Fatal("Failed to ensure default admin", zap.Error(err))
	}
	cancel()

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(boardUC)
	userHandler := httpHandler.NewUserHandler(boardUC)
	posterHandler := httpHandler.NewPosterHandler(boardUC)
	commentHandler := httpHandler.NewCommentHandler(boardUC)

	Handler := handler.NewHandler(authHandler, userHandler, posterHandler, commentHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
