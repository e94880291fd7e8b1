package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sehat-jiwa/assessment-service/internal/cache"
	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockAttemptRepository is a mock implementation of AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *models.AssessmentAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByID(ctx context.Context, id string) (*models.AssessmentAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentAttempt), args.Error(1)
}

func (m *MockAttemptRepository) Update(ctx context.Context, attempt *models.AssessmentAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetActive(ctx context.Context, userID, instrumentID string) (*models.AssessmentAttempt, error) {
	args := m.Called(ctx, userID, instrumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByUser(ctx context.Context, userID string) ([]*models.AssessmentAttempt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AssessmentAttempt), args.Error(1)
}

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByID(ctx context.Context, id string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) GetByAttempt(ctx context.Context, attemptID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) GetByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AssessmentResult), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Upsert(ctx context.Context, session *models.AssessmentSession) (*models.AssessmentSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSession), args.Error(1)
}

func (m *MockSessionRepository) GetOpen(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error) {
	args := m.Called(ctx, userID, instrumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSession), args.Error(1)
}

func (m *MockSessionRepository) Complete(ctx context.Context, userID, instrumentID string) error {
	args := m.Called(ctx, userID, instrumentID)
	return args.Error(0)
}

func (m *MockSessionRepository) IncrementExit(ctx context.Context, userID, instrumentID string) (*models.AssessmentSession, error) {
	args := m.Called(ctx, userID, instrumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSession), args.Error(1)
}

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) GetOrCreateForUpdate(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, progress *models.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockRepository aggregates the repository mocks; WithTx runs the callback
// against the same mocks, mirroring the shared-transaction contract.
type MockRepository struct {
	attempt  *MockAttemptRepository
	result   *MockResultRepository
	session  *MockSessionRepository
	progress *MockProgressRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		attempt:  &MockAttemptRepository{},
		result:   &MockResultRepository{},
		session:  &MockSessionRepository{},
		progress: &MockProgressRepository{},
	}
}

func (m *MockRepository) Attempt() repositories.AttemptRepository   { return m.attempt }
func (m *MockRepository) Result() repositories.ResultRepository     { return m.result }
func (m *MockRepository) Session() repositories.SessionRepository   { return m.session }
func (m *MockRepository) Progress() repositories.ProgressRepository { return m.progress }

func (m *MockRepository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }

// fakeCache is an in-memory CacheService; Get misses unless Set stored the key.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	suffix := strings.TrimPrefix(pattern, "*")
	for key := range f.entries {
		if strings.HasSuffix(key, suffix) {
			delete(f.entries, key)
		}
	}
	return nil
}
