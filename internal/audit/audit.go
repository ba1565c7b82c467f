// Package audit stores a record of every administrative request without
// holding up the response.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/observability"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=audit

type Repo interface {
	Insert(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

const (
	defaultListLimit = 100
	maxListLimit     = 1000
	insertTimeout    = 5 * time.Second
)

type Recorder struct {
	repo Repo
	pool WorkerPoolI
	now  func() time.Time
}

func New(repo Repo, pool WorkerPoolI) *Recorder {
	return &Recorder{
		repo: repo,
		pool: pool,
		now:  time.Now,
	}
}

// Record queues the entry for storage. A full queue drops it.
func (r *Recorder) Record(entry domain.AuditLog) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = r.now().UTC()

	queued := r.pool.TryAddTask(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		defer cancel()
		if err := r.repo.Insert(ctx, &entry); err != nil {
			observability.IncrementAuditEvent("failed")
			return fmt.Errorf("audit insert %s: %w", entry.ID, err)
		}
		observability.IncrementAuditEvent("stored")
		return nil
	})
	if !queued {
		observability.IncrementAuditEvent("dropped")
		zap.L().Warn("audit queue full, entry dropped",
			zap.Int("admin_id", entry.AdminID), zap.String("method", entry.Method), zap.String("path", entry.Path))
	}
}

func (r *Recorder) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return r.repo.List(ctx, limit)
}
