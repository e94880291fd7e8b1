package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (p ProgressPostgreSQL) GetByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (p ProgressPostgreSQL) GetOrCreateForUpdate(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := p.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.UserProgress{
		ID:             uuid.NewString(),
		UserID:         userID,
		LastActiveDate: time.Now(),
	}
	if err := p.db.WithContext(ctx).Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (p ProgressPostgreSQL) Update(ctx context.Context, progress *models.UserProgress) error {
	return p.db.WithContext(ctx).Save(progress).Error
}
