package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

func NewMock(t *testing.T) (*Recorder, *MockRepo, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewMockWorkerPoolI(ctrl)

	recorder := New(repo, pool)
	recorder.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	defer ctrl.Finish()
	return recorder, repo, pool
}

func TestRecord(t *testing.T) {
	recorder, repo, pool := NewMock(t)
	entry := domain.AuditLog{AdminID: 1, Method: "POST", Path: "/admin/drivers/{id}/approve", Status: 200, DurationMs: 3}

	t.Run("Queued and stored", func(t *testing.T) {
		var task Task
		pool.EXPECT().TryAddTask(gomock.Any()).DoAndReturn(func(fn Task) bool {
			task = fn
			return true
		})
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, stored *domain.AuditLog) error {
			_, err := uuid.Parse(stored.ID)
			assert.NoError(t, err)
			assert.Equal(t, 1, stored.AdminID)
			assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), stored.CreatedAt)
			return nil
		})

		recorder.Record(entry)
		require.NotNil(t, task)
		assert.NoError(t, task())
	})

	t.Run("Insert failure surfaces only in the task", func(t *testing.T) {
		var task Task
		pool.EXPECT().TryAddTask(gomock.Any()).DoAndReturn(func(fn Task) bool {
			task = fn
			return true
		})
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		recorder.Record(entry)
		assert.ErrorContains(t, task(), "database error")
	})

	t.Run("Full queue drops the entry", func(t *testing.T) {
		pool.EXPECT().TryAddTask(gomock.Any()).Return(false)

		assert.NotPanics(t, func() { recorder.Record(entry) })
	})
}

func TestRecordWithRealPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewWorkerPool(2, 8)
	recorder := New(repo, pool)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	for i := 0; i < 3; i++ {
		recorder.Record(domain.AuditLog{AdminID: i, Method: "GET", Path: "/admin/audit-logs", Status: 200})
	}
	pool.Close()
}

func TestList(t *testing.T) {
	recorder, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "Default", limit: 0, expected: 100},
		{name: "Explicit", limit: 20, expected: 20},
		{name: "Capped", limit: 5000, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().List(ctx, tt.expected).Return([]domain.AuditLog{{ID: "a"}}, nil)

			logs, err := recorder.List(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, logs, 1)
		})
	}
}
