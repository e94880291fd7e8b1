package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse is the envelope for mutation replies that carry a message.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler provides logging and response helpers shared by all handlers.
type BaseHandler struct {
	logger *slog.Logger
}

func NewBaseHandler(logger *slog.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, action string) {
	h.logger.Info("handling request",
		slog.String("action", action),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("client_ip", c.ClientIP()),
	)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, action string) {
	h.logger.Error("request failed",
		slog.String("action", action),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)
}

func (h *BaseHandler) RespondWithError(c *gin.Context, status int, resp ErrorResponse) {
	c.JSON(status, resp)
}

func (h *BaseHandler) RespondWithSuccess(c *gin.Context, status int, resp SuccessResponse) {
	c.JSON(status, resp)
}

// extractUserID resolves the caller identity set by the identity middleware.
// Requests without one are rejected with 401.
func (h *BaseHandler) extractUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.RespondWithError(c, http.StatusUnauthorized, ErrorResponse{
			Message: "User authentication required",
			Code:    "UNAUTHORIZED",
		})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		h.RespondWithError(c, http.StatusUnauthorized, ErrorResponse{
			Message: "User authentication required",
			Code:    "UNAUTHORIZED",
		})
		return "", false
	}
	return id, true
}
