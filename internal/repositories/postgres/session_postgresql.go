package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

func (s SessionPostgreSQL) Upsert(ctx context.Context, session *models.AssessmentSession) (*models.AssessmentSession, error) {
	existing, err := s.GetOpen(ctx, session.UserID, session.InstrumentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing == nil {
		session.ID = uuid.NewString()
		session.LastSavedAt = now
		if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
			return nil, err
		}
		return session, nil
	}

	existing.CurrentQuestion = session.CurrentQuestion
	existing.TotalQuestions = session.TotalQuestions
	existing.Answers = session.Answers
	existing.LastSavedAt = now
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s SessionPostgreSQL) GetOpen(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error) {
	var session models.AssessmentSession
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND instrument_id = ? AND is_completed = ?", userID, instrumentID, false).
		Order("created_at DESC").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s SessionPostgreSQL) Complete(ctx context.Context, userID, instrumentID string) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.AssessmentSession{}).
		Where("user_id = ? AND instrument_id = ? AND is_completed = ?", userID, instrumentID, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": now,
		}).Error
}

func (s SessionPostgreSQL) IncrementExit(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error) {
	session, err := s.GetOpen(ctx, userID, instrumentID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, gorm.ErrRecordNotFound
	}

	session.ExitCount++
	session.LastSavedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}
