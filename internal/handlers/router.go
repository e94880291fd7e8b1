package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/services"
)

type HandlerManager struct {
	instrumentHandler *InstrumentHandler
	attemptHandler    *AttemptHandler
	resultHandler     *ResultHandler
	progressHandler   *ProgressHandler
}

func NewHandlerManager(
	assessmentService services.AssessmentService,
	progressService services.ProgressService,
	exportService services.ExportService,
	logger *slog.Logger,
) *HandlerManager {
	return &HandlerManager{
		instrumentHandler: NewInstrumentHandler(logger),
		attemptHandler:    NewAttemptHandler(assessmentService, logger),
		resultHandler:     NewResultHandler(assessmentService, exportService, logger),
		progressHandler:   NewProgressHandler(progressService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(IdentityMiddleware())
	{
		// Instrument catalog routes
		instruments := v1.Group("/instruments")
		{
			instruments.GET("", hm.instrumentHandler.ListInstruments)
			instruments.GET("/:instrument_id", hm.instrumentHandler.GetInstrument)
		}

		// Attempt routes
		attempts := v1.Group("/attempts")
		{
			attempts.POST("", hm.attemptHandler.StartAttempt)
			attempts.GET("", hm.attemptHandler.ListAttempts)
			attempts.GET("/:attempt_id", hm.attemptHandler.GetAttempt)
			attempts.PUT("/:attempt_id/progress", hm.attemptHandler.SaveProgress)
			attempts.POST("/:attempt_id/complete", hm.attemptHandler.CompleteAttempt)
			attempts.GET("/:attempt_id/result", hm.resultHandler.GetResult)
		}

		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("/:instrument_id/exit", hm.attemptHandler.RecordExit)
		}

		// Result routes
		results := v1.Group("/results")
		{
			results.GET("", hm.resultHandler.ListResults)
			results.GET("/export", hm.resultHandler.ExportResults)
		}

		// Progress routes
		progress := v1.Group("/progress")
		{
			progress.GET("", hm.progressHandler.GetProgress)
			progress.POST("/videos", hm.progressHandler.RecordVideoWatched)
		}
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "assessment-service",
	})
}
