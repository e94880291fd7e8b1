package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// AttemptRepository persists assessment attempts.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.AssessmentAttempt) error
	GetByID(ctx context.Context, id string) (*models.AssessmentAttempt, error)
	Update(ctx context.Context, attempt *models.AssessmentAttempt) error

	// GetActive returns the single incomplete attempt for the user and
	// instrument, or (nil, nil) when none exists.
	GetActive(ctx context.Context, userID, instrumentID string) (*models.AssessmentAttempt, error)
	GetByUser(ctx context.Context, userID string) ([]*models.AssessmentAttempt, error)
}

// ResultRepository persists immutable scored results.
type ResultRepository interface {
	Create(ctx context.Context, result *models.AssessmentResult) error
	GetByID(ctx context.Context, id string) (*models.AssessmentResult, error)

	// GetByAttempt returns (nil, nil) when the attempt has no stored result.
	GetByAttempt(ctx context.Context, attemptID string) (*models.AssessmentResult, error)
	GetByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error)
}

// SessionRepository persists auto-save session records.
type SessionRepository interface {
	// Upsert creates the open session for (userID, instrumentID) or updates
	// its answers, position and LastSavedAt when one already exists.
	Upsert(ctx context.Context, session *models.AssessmentSession) (*models.AssessmentSession, error)

	// GetOpen returns the open session, or (nil, nil) when none exists.
	GetOpen(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error)
	Complete(ctx context.Context, userID, instrumentID string) error
	IncrementExit(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error)
}

// ProgressRepository persists per-user aggregate counters.
type ProgressRepository interface {
	// GetByUser returns (nil, nil) when the user has no progress row yet.
	GetByUser(ctx context.Context, userID string) (*models.UserProgress, error)

	// GetOrCreateForUpdate loads the progress row with a row lock, creating
	// it first when absent. Must run inside a transaction.
	GetOrCreateForUpdate(ctx context.Context, userID string) (*models.UserProgress, error)
	Update(ctx context.Context, progress *models.UserProgress) error
}

// Repository aggregates all repositories behind one transaction boundary.
type Repository interface {
	Attempt() AttemptRepository
	Result() ResultRepository
	Session() SessionRepository
	Progress() ProgressRepository

	// WithTx runs fn inside a database transaction; every repository
	// obtained from the passed Repository shares that transaction.
	WithTx(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// IsNotFoundError reports whether err is the database's missing-row error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
