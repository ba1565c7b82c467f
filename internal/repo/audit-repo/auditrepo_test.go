package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var stamp = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO audit_logs (id, admin_id, method, path, status, duration_ms, created_at)`)
	entry := &domain.AuditLog{
		ID: "0b7e3f5a-2c1d-4e8f-9a6b-1c2d3e4f5a6b", AdminID: 1, Method: "POST",
		Path: "/admin/transactions/approve", Status: 200, DurationMs: 12, CreatedAt: stamp,
	}

	mock.ExpectExec(query).
		WithArgs(entry.ID, 1, "POST", "/admin/transactions/approve", 200, int64(12), stamp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Insert(context.Background(), entry))

	mock.ExpectExec(query).
		WithArgs(entry.ID, 1, "POST", "/admin/transactions/approve", 200, int64(12), stamp).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Insert(context.Background(), entry))
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM audit_logs ORDER BY created_at DESC LIMIT $1`)

	mock.ExpectQuery(query).WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "admin_id", "method", "path", "status", "duration_ms", "created_at"}).
			AddRow("a", 1, "POST", "/admin/drivers/{id}/approve", 200, int64(4), stamp))
	logs, err := repo.List(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []domain.AuditLog{{ID: "a", AdminID: 1, Method: "POST", Path: "/admin/drivers/{id}/approve", Status: 200, DurationMs: 4, CreatedAt: stamp}}, logs)

	mock.ExpectQuery(query).WithArgs(50).WillReturnError(errors.New("database error"))
	_, err = repo.List(context.Background(), 50)
	assert.Error(t, err)
}
