package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sehat-jiwa/assessment-service/internal/events"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

func TestTouchStreak(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		streak     int
		lastActive time.Time
		want       int
	}{
		{"first activity", 0, now, 1},
		{"same day unchanged", 3, now.Add(-2 * time.Hour), 3},
		{"next day extends", 3, now.AddDate(0, 0, -1), 4},
		{"two day gap resets", 7, now.AddDate(0, 0, -2), 1},
		{"long gap resets", 30, now.AddDate(0, -1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &models.UserProgress{
				StreakDays:     tt.streak,
				LastActiveDate: tt.lastActive,
			}
			touchStreak(progress, now)
			assert.Equal(t, tt.want, progress.StreakDays)
			assert.Equal(t, now, progress.LastActiveDate)
		})
	}
}

func TestProgressGet_NoRowYieldsZeroCounters(t *testing.T) {
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewProgressService(repo, newFakeCache(), publisher, testLogger())

	repo.progress.On("GetByUser", mock.Anything, testUserID).Return(nil, nil)

	progress, err := service.Get(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, testUserID, progress.UserID)
	assert.Zero(t, progress.AssessmentsCompleted)
	assert.Zero(t, progress.StreakDays)
}

func TestProgressGet_SecondReadServedFromCache(t *testing.T) {
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewProgressService(repo, newFakeCache(), publisher, testLogger())

	stored := &models.UserProgress{UserID: testUserID, AssessmentsCompleted: 4}
	repo.progress.On("GetByUser", mock.Anything, testUserID).Return(stored, nil).Once()

	first, err := service.Get(context.Background(), testUserID)
	require.NoError(t, err)
	second, err := service.Get(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, first.AssessmentsCompleted, second.AssessmentsCompleted)
	repo.progress.AssertNumberOfCalls(t, "GetByUser", 1)
}

func TestRecordVideoWatched(t *testing.T) {
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewProgressService(repo, newFakeCache(), publisher, testLogger())

	stored := &models.UserProgress{UserID: testUserID, VideosWatched: 4}
	repo.progress.On("GetOrCreateForUpdate", mock.Anything, testUserID).Return(stored, nil)
	repo.progress.On("Update", mock.Anything, stored).Return(nil)

	progress, err := service.RecordVideoWatched(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 5, progress.VideosWatched)
	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventVideoWatched, published[0].Type)
}

func TestRecordVideoWatched_ExtendsStreak(t *testing.T) {
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewProgressService(repo, newFakeCache(), publisher, testLogger())

	// Last activity was yesterday, so watching a video today extends the
	// streak just like completing an assessment does.
	stored := &models.UserProgress{
		UserID:         testUserID,
		StreakDays:     3,
		LastActiveDate: time.Now().AddDate(0, 0, -1),
	}
	repo.progress.On("GetOrCreateForUpdate", mock.Anything, testUserID).Return(stored, nil)
	repo.progress.On("Update", mock.Anything, stored).Return(nil)

	progress, err := service.RecordVideoWatched(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 4, progress.StreakDays)
	assert.Equal(t, 1, progress.VideosWatched)
	assert.WithinDuration(t, time.Now(), progress.LastActiveDate, time.Minute)
}
