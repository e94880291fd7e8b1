package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sehat-jiwa/assessment-service/internal/cache"
	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/events"
	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
	"github.com/sehat-jiwa/assessment-service/internal/scoring"
	"github.com/sehat-jiwa/assessment-service/internal/utils"
)

// AssessmentService drives the attempt lifecycle: start or resume, save
// progress, complete with scoring, and result lookups.
type AssessmentService interface {
	StartOrResume(ctx context.Context, req *StartAttemptRequest, userID string) (*AttemptResponse, error)
	SaveProgress(ctx context.Context, req *SaveProgressRequest, userID string) (*AttemptResponse, error)
	Complete(ctx context.Context, attemptID, userID string) (*CompleteResponse, error)

	GetAttempt(ctx context.Context, attemptID, userID string) (*models.AssessmentAttempt, error)
	ListAttempts(ctx context.Context, userID string) ([]*models.AssessmentAttempt, error)
	GetResult(ctx context.Context, attemptID, userID string) (*models.AssessmentResult, error)
	ListResults(ctx context.Context, userID string) ([]*models.AssessmentResult, error)
	RecordExit(ctx context.Context, instrumentID, userID string) (*models.AssessmentSession, error)
}

type StartAttemptRequest struct {
	InstrumentID string `json:"instrument_id" validate:"required,instrument_id"`
}

type SaveProgressRequest struct {
	AttemptID       string           `json:"attempt_id" validate:"required,uuid"`
	Answers         models.AnswerSet `json:"answers" validate:"required"`
	CurrentQuestion int              `json:"current_question" validate:"gte=0"`
}

type AttemptResponse struct {
	Attempt *models.AssessmentAttempt `json:"attempt"`
	Resumed bool                      `json:"resumed"`
}

type CompleteResponse struct {
	Attempt *models.AssessmentAttempt `json:"attempt"`
	Result  *models.AssessmentResult  `json:"result"`
	Score   *models.ScoreResult       `json:"score"`
}

type assessmentService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAssessmentService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) AssessmentService {
	return &assessmentService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== LIFECYCLE OPERATIONS =====

func (s *assessmentService) StartOrResume(ctx context.Context, req *StartAttemptRequest, userID string) (*AttemptResponse, error) {
	s.logger.Info("Starting assessment attempt",
		"instrument_id", req.InstrumentID,
		"user_id", userID)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	instrument, err := catalog.Get(req.InstrumentID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.Attempt().GetActive(ctx, userID, instrument.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active attempt: %w", err)
	}
	if active != nil {
		s.logger.Info("Resuming existing attempt", "attempt_id", active.ID, "user_id", userID)
		return &AttemptResponse{Attempt: active, Resumed: true}, nil
	}

	attempt := &models.AssessmentAttempt{
		UserID:       userID,
		InstrumentID: instrument.ID,
		Title:        instrument.Title,
	}
	if err := attempt.SetAnswerSet(models.AnswerSet{}); err != nil {
		return nil, err
	}

	err = s.repo.WithTx(ctx, func(tx repositories.Repository) error {
		if err := tx.Attempt().Create(ctx, attempt); err != nil {
			return fmt.Errorf("failed to create attempt: %w", err)
		}

		session := &models.AssessmentSession{
			UserID:         userID,
			InstrumentID:   instrument.ID,
			TotalQuestions: instrument.QuestionCount(),
			Answers:        attempt.Answers,
		}
		if _, err := tx.Session().Upsert(ctx, session); err != nil {
			return fmt.Errorf("failed to open session: %w", err)
		}

		progress, err := tx.Progress().GetOrCreateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user progress: %w", err)
		}
		progress.AssessmentsInProgress++
		touchStreak(progress, time.Now())
		if err := tx.Progress().Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to update user progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUserCache(ctx, userID)
	s.publishEvent(ctx, events.EventAttemptStarted, &events.AttemptStartedEvent{
		AttemptID:    attempt.ID,
		UserID:       userID,
		InstrumentID: instrument.ID,
	})

	s.logger.Info("Assessment attempt started",
		"attempt_id", attempt.ID,
		"instrument_id", instrument.ID,
		"user_id", userID)

	return &AttemptResponse{Attempt: attempt}, nil
}

func (s *assessmentService) SaveProgress(ctx context.Context, req *SaveProgressRequest, userID string) (*AttemptResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	attempt, err := s.getOwnedAttempt(ctx, req.AttemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted {
		return nil, ErrAttemptAlreadyCompleted
	}

	instrument, err := catalog.Get(attempt.InstrumentID)
	if err != nil {
		return nil, err
	}

	if err := attempt.SetAnswerSet(req.Answers); err != nil {
		return nil, err
	}
	attempt.CurrentQuestion = req.CurrentQuestion
	attempt.Progress = progressPercent(req.CurrentQuestion, instrument.QuestionCount())

	err = s.repo.WithTx(ctx, func(tx repositories.Repository) error {
		if err := tx.Attempt().Update(ctx, attempt); err != nil {
			return fmt.Errorf("failed to save attempt: %w", err)
		}

		session := &models.AssessmentSession{
			UserID:          userID,
			InstrumentID:    attempt.InstrumentID,
			CurrentQuestion: req.CurrentQuestion,
			TotalQuestions:  instrument.QuestionCount(),
			Answers:         attempt.Answers,
		}
		if _, err := tx.Session().Upsert(ctx, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Attempt progress saved",
		"attempt_id", attempt.ID,
		"current_question", attempt.CurrentQuestion,
		"progress", attempt.Progress)

	return &AttemptResponse{Attempt: attempt}, nil
}

func (s *assessmentService) Complete(ctx context.Context, attemptID, userID string) (*CompleteResponse, error) {
	s.logger.Info("Completing assessment attempt", "attempt_id", attemptID, "user_id", userID)

	attempt, err := s.getOwnedAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}

	// Completing twice is a no-op: return the stored result untouched.
	if attempt.IsCompleted {
		result, err := s.repo.Result().GetByAttempt(ctx, attempt.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored result: %w", err)
		}
		if result == nil {
			return nil, ErrResultNotFound
		}
		s.logger.Info("Attempt already completed, returning stored result",
			"attempt_id", attempt.ID, "result_id", result.ID)
		return &CompleteResponse{Attempt: attempt, Result: result}, nil
	}

	instrument, err := catalog.Get(attempt.InstrumentID)
	if err != nil {
		return nil, err
	}

	answers, err := attempt.AnswerSet()
	if err != nil {
		return nil, err
	}
	if missing := answers.Missing(instrument.QuestionCount()); len(missing) > 0 {
		return nil, &IncompleteAssessmentError{AttemptID: attempt.ID, Missing: missing}
	}

	score, err := scoring.Score(attempt.InstrumentID, answers)
	if err != nil {
		return nil, err
	}

	result, err := models.NewAssessmentResult(attempt, score)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	err = s.repo.WithTx(ctx, func(tx repositories.Repository) error {
		attempt.IsCompleted = true
		attempt.Progress = 100
		attempt.CurrentQuestion = instrument.QuestionCount() - 1
		if err := attempt.SetResult(score); err != nil {
			return err
		}
		if err := tx.Attempt().Update(ctx, attempt); err != nil {
			return fmt.Errorf("failed to mark attempt completed: %w", err)
		}

		if err := tx.Result().Create(ctx, result); err != nil {
			return fmt.Errorf("failed to persist result: %w", err)
		}

		if err := tx.Session().Complete(ctx, userID, attempt.InstrumentID); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}

		progress, err := tx.Progress().GetOrCreateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user progress: %w", err)
		}
		progress.AssessmentsCompleted++
		if progress.AssessmentsInProgress > 0 {
			progress.AssessmentsInProgress--
		}
		touchStreak(progress, completedAt)
		if err := tx.Progress().Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to update user progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUserCache(ctx, userID)
	s.publishEvent(ctx, events.EventAssessmentComplete, &events.AssessmentCompletedEvent{
		AttemptID:    attempt.ID,
		ResultID:     result.ID,
		UserID:       userID,
		InstrumentID: attempt.InstrumentID,
		Scores:       score.Scores,
		Categories:   score.Categories,
		CompletedAt:  completedAt,
	})

	s.logger.Info("Assessment attempt completed",
		"attempt_id", attempt.ID,
		"result_id", result.ID,
		"instrument_id", attempt.InstrumentID,
		"user_id", userID)

	return &CompleteResponse{Attempt: attempt, Result: result, Score: score}, nil
}

// ===== READ OPERATIONS =====

func (s *assessmentService) GetAttempt(ctx context.Context, attemptID, userID string) (*models.AssessmentAttempt, error) {
	return s.getOwnedAttempt(ctx, attemptID, userID)
}

func (s *assessmentService) ListAttempts(ctx context.Context, userID string) ([]*models.AssessmentAttempt, error) {
	attempts, err := s.repo.Attempt().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}

func (s *assessmentService) GetResult(ctx context.Context, attemptID, userID string) (*models.AssessmentResult, error) {
	attempt, err := s.getOwnedAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.Result().GetByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	return result, nil
}

func (s *assessmentService) ListResults(ctx context.Context, userID string) ([]*models.AssessmentResult, error) {
	var cached []*models.AssessmentResult
	if err := s.cache.Get(ctx, cache.ResultsKey(userID), &cached); err == nil {
		return cached, nil
	}

	results, err := s.repo.Result().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	if err := s.cache.Set(ctx, cache.ResultsKey(userID), results, 10*time.Minute); err != nil {
		s.logger.Warn("Failed to cache user results", "user_id", userID, "error", err)
	}
	return results, nil
}

func (s *assessmentService) RecordExit(ctx context.Context, instrumentID, userID string) (*models.AssessmentSession, error) {
	if _, err := catalog.Get(instrumentID); err != nil {
		return nil, err
	}

	session, err := s.repo.Session().IncrementExit(ctx, userID, instrumentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to record session exit: %w", err)
	}

	s.logger.Info("Session exit recorded",
		"user_id", userID,
		"instrument_id", instrumentID,
		"exit_count", session.ExitCount)
	return session, nil
}

// ===== HELPERS =====

func (s *assessmentService) getOwnedAttempt(ctx context.Context, attemptID, userID string) (*models.AssessmentAttempt, error) {
	attempt, err := s.repo.Attempt().GetByID(ctx, attemptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if attempt.UserID != userID {
		return nil, ErrAttemptAccessDenied
	}
	return attempt, nil
}

// progressPercent maps a zero-based question position to a 0-100 percent.
func progressPercent(currentQuestion, questionCount int) int {
	if questionCount <= 0 {
		return 0
	}
	if currentQuestion >= questionCount-1 {
		return 100
	}
	return int(math.Round(float64(currentQuestion+1) / float64(questionCount) * 100))
}

// invalidateUserCache drops every cached read for the user. All per-user
// keys share the ":user:<id>" suffix, so one pattern covers them.
func (s *assessmentService) invalidateUserCache(ctx context.Context, userID string) {
	if err := s.cache.DeletePattern(ctx, "*:user:"+userID); err != nil {
		s.logger.Warn("Failed to invalidate user cache", "user_id", userID, "error", err)
	}
}

func (s *assessmentService) publishEvent(ctx context.Context, eventType events.EventType, payload interface{}) {
	event := &events.AssessmentEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "assessment-service",
		Version:   "1.0",
		Data:      payload,
	}
	if err := s.publisher.PublishAssessmentEvent(ctx, event); err != nil {
		// Event delivery failure must not roll back committed state.
		s.logger.Error("Failed to publish event", "event_type", eventType, "error", err)
	}
}
