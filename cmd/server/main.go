package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/cache"
	"github.com/sehat-jiwa/assessment-service/internal/config"
	"github.com/sehat-jiwa/assessment-service/internal/handlers"
	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories/postgres"
	"github.com/sehat-jiwa/assessment-service/internal/services"
	"github.com/sehat-jiwa/assessment-service/internal/utils"
	"github.com/sehat-jiwa/assessment-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	appLogger := utils.NewDefaultLogger()
	if cfg.Environment == "development" {
		appLogger = utils.NewDevelopmentLogger()
	}
	logger := utils.ToSlogLogger(appLogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AssessmentAttempt{},
		&models.AssessmentResult{},
		&models.AssessmentSession{},
		&models.UserProgress{},
	); err != nil {
		logger.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	cacheService := cache.NewRedisCache(redisClient, logger)

	publisher, err := cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	validator := utils.NewValidator()

	assessmentService := services.NewAssessmentService(repo, cacheService, publisher, logger, validator)
	progressService := services.NewProgressService(repo, cacheService, publisher, logger)
	exportService := services.NewExportService(repo, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(appLogger))

	handlerManager := handlers.NewHandlerManager(assessmentService, progressService, exportService, logger)
	handlerManager.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Assessment service listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
