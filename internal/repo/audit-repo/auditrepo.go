package auditrepo

import (
	"context"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, admin_id, method, path, status, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.AdminID, entry.Method, entry.Path, entry.Status, entry.DurationMs, entry.CreatedAt)
	if err != nil {
		zap.L().Error("failed to insert audit log", zap.String("id", entry.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	query := `
		SELECT id, admin_id, method, path, status, duration_ms, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list audit logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.AuditLog, 0)
	for rows.Next() {
		var l domain.AuditLog
		if err := rows.Scan(&l.ID, &l.AdminID, &l.Method, &l.Path, &l.Status, &l.DurationMs, &l.CreatedAt); err != nil {
			zap.L().Error("failed to scan audit log", zap.Error(err))
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate audit logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
