package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r ResultPostgreSQL) Create(ctx context.Context, result *models.AssessmentResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(result).Error
}

func (r ResultPostgreSQL) GetByID(ctx context.Context, id string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r ResultPostgreSQL) GetByAttempt(ctx context.Context, attemptID string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r ResultPostgreSQL) GetByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error) {
	var results []*models.AssessmentResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
