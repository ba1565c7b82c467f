package reaper

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/observability"
)

//go:generate mockgen -source=reaper.go -destination=mock_reaper.go -package=reaper

type PendingService interface {
	ExpiredPending(ctx context.Context, before time.Time) ([]int, error)
	ExpirePending(ctx context.Context, driverID int, before time.Time) error
}

// Service releases pending reservations older than ttl.
type Service struct {
	trips          PendingService
	ttl            time.Duration
	updateInterval time.Duration
	parallel       int
	now            func() time.Time
}

func New(trips PendingService, ttl, interval time.Duration) *Service {
	return &Service{
		trips:          trips,
		ttl:            ttl,
		updateInterval: interval,
		parallel:       8,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.ttl <= 0 {
		zap.L().Info("Pending reaper disabled")
		return
	}
	zap.L().Info("Pending reaper started", zap.Duration("ttl", s.ttl), zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping pending reaper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep returns how many reservations were released.
func (s *Service) sweep(ctx context.Context) int {
	cutoff := s.now().Add(-s.ttl)
	drivers, err := s.trips.ExpiredPending(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to fetch expired pending requests", zap.Error(err))
		return 0
	}

	var released atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.parallel)
	for _, driverID := range drivers {
		driverID := driverID
		g.Go(func() error {
			err := s.trips.ExpirePending(ctx, driverID, cutoff)
			switch {
			case err == nil:
				released.Add(1)
			case errors.Is(err, domain.ErrConflict):
				// released or renewed by the driver in the meantime
			default:
				zap.L().Warn("Failed to release pending request", zap.Int("driver_id", driverID), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	n := int(released.Load())
	if n > 0 {
		observability.AddPendingExpired(n)
		zap.L().Info("Expired pending requests released", zap.Int("count", n))
	}
	return n
}
