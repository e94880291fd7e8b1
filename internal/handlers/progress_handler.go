package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/services"
)

// ProgressHandler serves per-user activity counters and streaks.
type ProgressHandler struct {
	BaseHandler
	service services.ProgressService
}

func NewProgressHandler(service services.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetProgress returns the caller's progress counters.
// GET /api/v1/progress
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	progress, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err, "get_progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// RecordVideoWatched bumps the watched-video counter and streak.
// POST /api/v1/progress/videos
func (h *ProgressHandler) RecordVideoWatched(c *gin.Context) {
	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	progress, err := h.service.RecordVideoWatched(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err, "record_video_watched")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, SuccessResponse{
		Message: "Video watch recorded",
		Data:    progress,
	})
}
