package models

import "time"

// UserProgress is the per-user aggregate counter row. Counters are mutated
// additively as attempts change state; decrements floor at zero.
type UserProgress struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	UserID string `json:"user_id" gorm:"not null;size:36;uniqueIndex"`

	AssessmentsCompleted  int `json:"assessments_completed" gorm:"default:0"`
	AssessmentsInProgress int `json:"assessments_in_progress" gorm:"default:0"`
	VideosWatched         int `json:"videos_watched" gorm:"default:0"`
	StreakDays            int `json:"streak_days" gorm:"default:0"`

	LastActiveDate time.Time `json:"last_active_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
