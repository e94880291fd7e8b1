package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentSession is the auto-save record for an in-progress attempt.
// One open session exists per (UserID, InstrumentID); it is marked completed
// together with its attempt.
type AssessmentSession struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	UserID       string `json:"user_id" gorm:"not null;size:36;index:idx_sessions_user_instrument"`
	InstrumentID string `json:"instrument_id" gorm:"not null;size:20;index:idx_sessions_user_instrument"`

	CurrentQuestion int            `json:"current_question" gorm:"default:0"`
	TotalQuestions  int            `json:"total_questions" gorm:"not null"`
	Answers         datatypes.JSON `json:"answers" gorm:"type:jsonb"`

	// ExitCount tracks how many times the user left mid-assessment.
	ExitCount   int        `json:"exit_count" gorm:"default:0"`
	IsCompleted bool       `json:"is_completed" gorm:"default:false"`
	LastSavedAt time.Time  `json:"last_saved_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (AssessmentSession) TableName() string {
	return "assessment_sessions"
}
