package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/services"
)

// AttemptHandler exposes the attempt lifecycle over HTTP.
type AttemptHandler struct {
	BaseHandler
	service services.AssessmentService
}

func NewAttemptHandler(service services.AssessmentService, logger *slog.Logger) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// StartAttempt starts a new attempt or resumes the user's active one.
// POST /api/v1/attempts
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	h.LogRequest(c, "start_attempt")

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	var req services.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.service.StartOrResume(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err, "start_attempt")
		return
	}

	status := http.StatusCreated
	if resp.Resumed {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// SaveProgress stores the answers and position of an in-flight attempt.
// PUT /api/v1/attempts/:attempt_id/progress
func (h *AttemptHandler) SaveProgress(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "attempt_id")
	if attemptID == "" {
		return
	}

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	var req services.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}
	req.AttemptID = attemptID

	resp, err := h.service.SaveProgress(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err, "save_progress")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteAttempt scores the attempt and persists the result.
// POST /api/v1/attempts/:attempt_id/complete
func (h *AttemptHandler) CompleteAttempt(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "attempt_id")
	if attemptID == "" {
		return
	}

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "complete_attempt")

	resp, err := h.service.Complete(c.Request.Context(), attemptID, userID)
	if err != nil {
		h.handleServiceError(c, err, "complete_attempt")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAttempt returns one attempt owned by the caller.
// GET /api/v1/attempts/:attempt_id
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "attempt_id")
	if attemptID == "" {
		return
	}

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	attempt, err := h.service.GetAttempt(c.Request.Context(), attemptID, userID)
	if err != nil {
		h.handleServiceError(c, err, "get_attempt")
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// ListAttempts returns the caller's attempts, newest first.
// GET /api/v1/attempts
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	attempts, err := h.service.ListAttempts(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err, "list_attempts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// RecordExit counts an early exit from an open assessment session.
// POST /api/v1/sessions/:instrument_id/exit
func (h *AttemptHandler) RecordExit(c *gin.Context) {
	instrumentID := ParseStringIDParam(c, "instrument_id")
	if instrumentID == "" {
		return
	}

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	session, err := h.service.RecordExit(c.Request.Context(), instrumentID, userID)
	if err != nil {
		h.handleServiceError(c, err, "record_exit")
		return
	}
	c.JSON(http.StatusOK, session)
}
