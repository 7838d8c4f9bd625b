package lifecycle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"ocai-hub/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

type MockRepository struct {
	mock.Mock
}

var _ Repository = (*MockRepository)(nil)

func (m *MockRepository) OpenDueSurveys(now time.Time) ([]string, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) CloseDueSurveys(now time.Time) ([]string, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ==================== TESTS ====================

func TestNewWorker_Schedule(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expectError bool
		from        time.Time
		next        time.Time
	}{
		{
			name: "Default every five minutes",
			spec: "",
			from: time.Date(2025, 6, 1, 10, 2, 30, 0, time.UTC),
			next: time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC),
		},
		{
			name: "Hourly",
			spec: "0 * * * *",
			from: time.Date(2025, 6, 1, 10, 2, 30, 0, time.UTC),
			next: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name:        "Seconds field rejected",
			spec:        "0 */5 * * * *",
			expectError: true,
		},
		{
			name:        "Garbage",
			spec:        "every so often",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWorker(new(MockRepository), cache.NewMemory(), discardLogger(), tt.spec)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, w.Next(tt.from))
		})
	}
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockRepository)
	repo.On("OpenDueSurveys", now).Return([]string{"s1"}, nil)
	repo.On("CloseDueSurveys", now).Return([]string{"s2", "s3"}, nil)

	c := cache.NewMemory()
	for _, id := range []string{"s1", "s2", "untouched"} {
		require.NoError(t, c.Set(ctx, cache.AggregatesKey(id), id, time.Hour))
	}

	w, err := NewWorker(repo, c, discardLogger(), "")
	require.NoError(t, err)
	w.now = func() time.Time { return now }

	result, err := w.RunOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"s1"}, result.Opened)
	assert.Equal(t, []string{"s2", "s3"}, result.Closed)

	var v string
	assert.ErrorIs(t, c.Get(ctx, cache.AggregatesKey("s1"), &v), cache.ErrMiss)
	assert.ErrorIs(t, c.Get(ctx, cache.AggregatesKey("s2"), &v), cache.ErrMiss)
	require.NoError(t, c.Get(ctx, cache.AggregatesKey("untouched"), &v))
	assert.Equal(t, "untouched", v)
	repo.AssertExpectations(t)
}

func TestWorker_RunOnceErrors(t *testing.T) {
	t.Run("Open fails", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OpenDueSurveys", mock.Anything).Return(nil, errors.New("database is locked"))

		w, err := NewWorker(repo, cache.NewMemory(), discardLogger(), "")
		require.NoError(t, err)

		_, err = w.RunOnce(context.Background())
		assert.ErrorContains(t, err, "failed to open due surveys")
		repo.AssertNotCalled(t, "CloseDueSurveys", mock.Anything)
	})

	t.Run("Close fails", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OpenDueSurveys", mock.Anything).Return([]string{"s1"}, nil)
		repo.On("CloseDueSurveys", mock.Anything).Return(nil, errors.New("database is locked"))

		w, err := NewWorker(repo, cache.NewMemory(), discardLogger(), "")
		require.NoError(t, err)

		result, err := w.RunOnce(context.Background())
		assert.ErrorContains(t, err, "failed to close due surveys")
		assert.Equal(t, []string{"s1"}, result.Opened)
	})
}

func TestWorker_StartStop(t *testing.T) {
	ran := make(chan struct{}, 1)
	repo := new(MockRepository)
	repo.On("OpenDueSurveys", mock.Anything).Return([]string{}, nil)
	repo.On("CloseDueSurveys", mock.Anything).Return([]string{}, nil).Run(func(mock.Arguments) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	w, err := NewWorker(repo, cache.NewMemory(), discardLogger(), "0 0 1 1 *")
	require.NoError(t, err)

	w.Start()
	w.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not run its start-up pass")
	}

	w.Stop()
	w.Stop()
	repo.AssertNumberOfCalls(t, "OpenDueSurveys", 1)
}
