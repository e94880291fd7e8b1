package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a AttemptPostgreSQL) Create(ctx context.Context, attempt *models.AssessmentAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a AttemptPostgreSQL) GetByID(ctx context.Context, id string) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a AttemptPostgreSQL) Update(ctx context.Context, attempt *models.AssessmentAttempt) error {
	return a.db.WithContext(ctx).Save(attempt).Error
}

func (a AttemptPostgreSQL) GetActive(ctx context.Context, userID, instrumentID string) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND instrument_id = ? AND is_completed = ?", userID, instrumentID, false).
		Order("created_at DESC").
		First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (a AttemptPostgreSQL) GetByUser(ctx context.Context, userID string) ([]*models.AssessmentAttempt, error) {
	var attempts []*models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
