package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// AssessmentAttempt is one user's pass through an instrument. At most one
// incomplete attempt exists per (UserID, InstrumentID); starting again
// resumes it. Attempts are never deleted in the normal flow.
type AssessmentAttempt struct {
	ID string `json:"id" gorm:"primaryKey;size:36"`

	// The partial unique index makes concurrent double-starts impossible,
	// not just unlikely: only one non-completed row may exist per user and
	// instrument.
	UserID       string `json:"user_id" gorm:"not null;size:36;index;index:idx_attempts_active,unique,where:is_completed = false"`
	InstrumentID string `json:"instrument_id" gorm:"not null;size:20;index:idx_attempts_active,unique,where:is_completed = false" validate:"required"`
	Title        string `json:"title" gorm:"not null;size:200"`

	// Answers is the sparse question-index -> raw value map, stored as jsonb.
	Answers         datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	CurrentQuestion int            `json:"current_question" gorm:"default:0"`
	Progress        int            `json:"progress" gorm:"default:0"` // percent, 0-100
	IsCompleted     bool           `json:"is_completed" gorm:"default:false;index"`

	// Results holds the computed ScoreResult once completed, null before.
	Results datatypes.JSON `json:"results,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}

// AnswerSet decodes the stored answers. An empty column yields an empty set.
func (a *AssessmentAttempt) AnswerSet() (AnswerSet, error) {
	if len(a.Answers) == 0 {
		return AnswerSet{}, nil
	}
	var set AnswerSet
	if err := json.Unmarshal(a.Answers, &set); err != nil {
		return nil, fmt.Errorf("decode attempt answers: %w", err)
	}
	return set, nil
}

// SetAnswerSet encodes the given answers into the jsonb column.
func (a *AssessmentAttempt) SetAnswerSet(set AnswerSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode attempt answers: %w", err)
	}
	a.Answers = raw
	return nil
}

// SetResult stores the computed score on the attempt.
func (a *AssessmentAttempt) SetResult(result *ScoreResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode attempt result: %w", err)
	}
	a.Results = raw
	return nil
}

// ScoreResult is the output of the scoring engine for one completed attempt.
type ScoreResult struct {
	Scores          map[string]float64 `json:"scores"`
	Categories      map[string]string  `json:"categories"`
	Interpretation  string             `json:"interpretation"`
	Recommendations []string           `json:"recommendations"`
}

// AssessmentResult is the persisted, immutable record of a scored attempt.
type AssessmentResult struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	AttemptID    string `json:"attempt_id" gorm:"not null;size:36;uniqueIndex"`
	UserID       string `json:"user_id" gorm:"not null;size:36;index"`
	InstrumentID string `json:"instrument_id" gorm:"not null;size:20"`

	Scores          datatypes.JSON `json:"scores" gorm:"type:jsonb"`
	Categories      datatypes.JSON `json:"categories" gorm:"type:jsonb"`
	Interpretation  string         `json:"interpretation" gorm:"type:text"`
	Recommendations datatypes.JSON `json:"recommendations" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}

// NewAssessmentResult builds a result row from a computed score.
func NewAssessmentResult(attempt *AssessmentAttempt, score *ScoreResult) (*AssessmentResult, error) {
	scores, err := json.Marshal(score.Scores)
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	categories, err := json.Marshal(score.Categories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	recommendations, err := json.Marshal(score.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}
	return &AssessmentResult{
		AttemptID:       attempt.ID,
		UserID:          attempt.UserID,
		InstrumentID:    attempt.InstrumentID,
		Scores:          scores,
		Categories:      categories,
		Interpretation:  score.Interpretation,
		Recommendations: recommendations,
	}, nil
}

// DecodedScores returns the scores map of a persisted result.
func (r *AssessmentResult) DecodedScores() (map[string]float64, error) {
	scores := map[string]float64{}
	if len(r.Scores) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(r.Scores, &scores); err != nil {
		return nil, fmt.Errorf("decode result scores: %w", err)
	}
	return scores, nil
}

// DecodedCategories returns the categories map of a persisted result.
func (r *AssessmentResult) DecodedCategories() (map[string]string, error) {
	categories := map[string]string{}
	if len(r.Categories) == 0 {
		return categories, nil
	}
	if err := json.Unmarshal(r.Categories, &categories); err != nil {
		return nil, fmt.Errorf("decode result categories: %w", err)
	}
	return categories, nil
}
