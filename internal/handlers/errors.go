package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/sehat-jiwa/assessment-service/internal/errors"
	"github.com/sehat-jiwa/assessment-service/internal/services"
)

// handleServiceError maps service layer errors onto HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error, action string) {
	h.LogError(c, err, action)

	var validationErrs apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.RespondWithError(c, http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrs,
			Code:    "VALIDATION_ERROR",
		})
		return
	}

	var incomplete *services.IncompleteAssessmentError
	if errors.As(err, &incomplete) {
		h.RespondWithError(c, http.StatusUnprocessableEntity, ErrorResponse{
			Message: incomplete.Error(),
			Details: gin.H{
				"attempt_id":        incomplete.AttemptID,
				"missing_questions": incomplete.Missing,
			},
			Code: "INCOMPLETE_ASSESSMENT",
		})
		return
	}

	switch {
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
			Code:    "NOT_FOUND",
		})
	case services.IsUnauthorized(err):
		h.RespondWithError(c, http.StatusForbidden, ErrorResponse{
			Message: err.Error(),
			Code:    "FORBIDDEN",
		})
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, ErrorResponse{
			Message: err.Error(),
			Code:    "CONFLICT",
		})
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	default:
		h.RespondWithError(c, http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
			Code:    "INTERNAL_ERROR",
		})
	}
}
