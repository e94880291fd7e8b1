package services

import (
	"errors"
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	apperrors "github.com/sehat-jiwa/assessment-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Attempt specific errors
	ErrAttemptNotFound         = errors.New("attempt not found")
	ErrAttemptAccessDenied     = errors.New("access denied to attempt")
	ErrAttemptAlreadyCompleted = errors.New("attempt already completed")

	// Result specific errors
	ErrResultNotFound = errors.New("result not found")

	// Session specific errors
	ErrSessionNotFound = errors.New("no open session for this assessment")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IncompleteAssessmentError rejects completion while questions remain
// unanswered. Missing holds the zero-based question indexes.
type IncompleteAssessmentError struct {
	AttemptID string `json:"attempt_id"`
	Missing   []int  `json:"missing"`
}

func (e *IncompleteAssessmentError) Error() string {
	return fmt.Sprintf("attempt %s cannot be completed: %d questions unanswered", e.AttemptID, len(e.Missing))
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAttemptNotFound) ||
		errors.Is(err, ErrResultNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, catalog.ErrUnknownInstrument)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrAttemptAccessDenied)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsIncomplete checks if error represents an incomplete assessment
func IsIncomplete(err error) bool {
	var ie *IncompleteAssessmentError
	return errors.As(err, &ie)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAttemptAlreadyCompleted)
}
