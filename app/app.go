// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeseeker-api/config"
	"lifeseeker-api/db"
	"lifeseeker-api/handler"
	"lifeseeker-api/logger"
	"lifeseeker-api/repository"
	"lifeseeker-api/router"
	"lifeseeker-api/service"
	"lifeseeker-api/telemetry"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	if err := telemetry.Init(config.AppConfig.Sentry.DSN); err != nil {
		logger.Log.Fatalf("Error initializing error telemetry: %v", err)
	}
	defer telemetry.Flush()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	// Repositories, services, and handlers are constructed once here and
	// passed by reference; nothing is built at package import time.
	authCfg := config.AppConfig.Auth

	codec, err := service.NewTokenCodec(authCfg.SecretKey, authCfg.TokenHashAlgorithm)
	if err != nil {
		logger.Log.Fatalf("Error creating token codec: %v", err)
	}
	hasher := service.NewPasswordHasher(authCfg.PasswordHashCost)

	userRepo := repository.NewUserRepository(database)
	issuanceRepo := repository.NewIssuanceRepository(database)
	momentRepo := repository.NewMomentRepository(database)
	annotationRepo := repository.NewAnnotationRepository(database)

	authService := service.NewAuthService(userRepo, issuanceRepo, hasher)
	tokenIssuer := service.NewTokenIssuer(codec, issuanceRepo,
		time.Duration(authCfg.AccessTokenExpireMinutes)*time.Minute)
	userService := service.NewUserService(userRepo, hasher)
	momentService := service.NewMomentService(momentRepo)
	annotationService := service.NewAnnotationService(annotationRepo, redisClient)
	uploadService := service.NewUploadService(userRepo, momentRepo, config.AppConfig.Storage.DataDir)

	authHandler := handler.NewAuthHandler(authService, tokenIssuer)
	userHandler := handler.NewUserHandler(userService)
	momentHandler := handler.NewMomentHandler(momentService)
	annotationHandler := handler.NewAnnotationHandler(annotationService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	r := router.NewRouter(codec, authService, authHandler, userHandler, momentHandler, annotationHandler, uploadHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
