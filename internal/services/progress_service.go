package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sehat-jiwa/assessment-service/internal/cache"
	"github.com/sehat-jiwa/assessment-service/internal/events"
	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

// ProgressService exposes the per-user aggregate counters.
type ProgressService interface {
	Get(ctx context.Context, userID string) (*models.UserProgress, error)
	RecordVideoWatched(ctx context.Context, userID string) (*models.UserProgress, error)
}

type progressService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewProgressService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
) ProgressService {
	return &progressService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *progressService) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	var cached models.UserProgress
	if err := s.cache.Get(ctx, cache.ProgressKey(userID), &cached); err == nil {
		return &cached, nil
	}

	progress, err := s.repo.Progress().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	if progress == nil {
		// No activity yet; report zero counters without creating a row.
		progress = &models.UserProgress{UserID: userID}
	}

	if err := s.cache.Set(ctx, cache.ProgressKey(userID), progress, 5*time.Minute); err != nil {
		s.logger.Warn("Failed to cache user progress", "user_id", userID, "error", err)
	}
	return progress, nil
}

func (s *progressService) RecordVideoWatched(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress *models.UserProgress
	err := s.repo.WithTx(ctx, func(tx repositories.Repository) error {
		p, err := tx.Progress().GetOrCreateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user progress: %w", err)
		}
		p.VideosWatched++
		touchStreak(p, time.Now())
		if err := tx.Progress().Update(ctx, p); err != nil {
			return fmt.Errorf("failed to update user progress: %w", err)
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record watched video: %w", err)
	}

	if err := s.cache.Delete(ctx, cache.ProgressKey(userID)); err != nil {
		s.logger.Warn("Failed to invalidate progress cache", "user_id", userID, "error", err)
	}

	event := &events.AssessmentEvent{
		ID:        uuid.NewString(),
		Type:      events.EventVideoWatched,
		Timestamp: time.Now(),
		Source:    "assessment-service",
		Version:   "1.0",
		Data: &events.VideoWatchedEvent{
			UserID:        userID,
			VideosWatched: progress.VideosWatched,
		},
	}
	if err := s.publisher.PublishAssessmentEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", events.EventVideoWatched, "error", err)
	}

	s.logger.Info("Video watched recorded",
		"user_id", userID,
		"videos_watched", progress.VideosWatched)
	return progress, nil
}

// touchStreak advances the activity streak for a new active day. Same-day
// activity leaves the streak unchanged, the next calendar day extends it,
// and any gap resets it to 1.
func touchStreak(progress *models.UserProgress, now time.Time) {
	lastY, lastM, lastD := progress.LastActiveDate.Date()
	nowY, nowM, nowD := now.Date()
	last := time.Date(lastY, lastM, lastD, 0, 0, 0, 0, time.UTC)
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, time.UTC)

	switch days := int(today.Sub(last).Hours() / 24); {
	case progress.StreakDays == 0:
		progress.StreakDays = 1
	case days == 0:
		// Already counted today.
	case days == 1:
		progress.StreakDays++
	default:
		progress.StreakDays = 1
	}
	progress.LastActiveDate = now
}
