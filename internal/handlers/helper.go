package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ParseStringIDParam reads a required path parameter, replying 400 when empty.
func ParseStringIDParam(c *gin.Context, paramName string) string {
	value := c.Param(paramName)
	if value == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: paramName + " is required",
			Code:    "INVALID_PARAMETER",
		})
		return ""
	}
	return value
}

// IdentityMiddleware copies the authenticated user id forwarded by the
// gateway into the request context. Auth itself happens upstream.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
