package events

import "time"

// EventType represents different types of assessment domain events
type EventType string

const (
	// Attempt events
	EventAttemptStarted     EventType = "attempt.started"
	EventAssessmentComplete EventType = "assessment.completed"

	// Progress events
	EventVideoWatched EventType = "progress.video_watched"
)

// AssessmentEvent is the base event structure published to the broker
type AssessmentEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Event payloads

type AttemptStartedEvent struct {
	AttemptID    string `json:"attempt_id"`
	UserID       string `json:"user_id"`
	InstrumentID string `json:"instrument_id"`
	Resumed      bool   `json:"resumed"`
}

type AssessmentCompletedEvent struct {
	AttemptID    string             `json:"attempt_id"`
	ResultID     string             `json:"result_id"`
	UserID       string             `json:"user_id"`
	InstrumentID string             `json:"instrument_id"`
	Scores       map[string]float64 `json:"scores"`
	Categories   map[string]string  `json:"categories"`
	CompletedAt  time.Time          `json:"completed_at"`
}

type VideoWatchedEvent struct {
	UserID        string `json:"user_id"`
	VideosWatched int    `json:"videos_watched"`
}
