package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/audit"
	"github.com/GlebRadaev/ridehail/internal/config"
	"github.com/GlebRadaev/ridehail/internal/handlers"
	"github.com/GlebRadaev/ridehail/internal/observability"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/internal/reaper"
	"github.com/GlebRadaev/ridehail/internal/repo"
	"github.com/GlebRadaev/ridehail/internal/routing"
	"github.com/GlebRadaev/ridehail/internal/service"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	reaper    *reaper.Service
	auditPool *audit.WorkerPool
	pool      *pgxpool.Pool
	redis     *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	observability.Init()

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	estimator, err := a.buildEstimator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't build route estimator: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.auditPool = audit.NewWorkerPool(cfg.AuditWorkers, cfg.AuditQueue)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Deps{
		JWT:         jwtService,
		Estimator:   estimator,
		AuditPool:   a.auditPool,
		TokenTTL:    cfg.TokenTTL,
		NearbyMaxKm: cfg.NearbyMaxKm,
	})
	a.api = handlers.New(a.srv, jwtService, cfg.PublicRPS)
	a.reaper = reaper.New(a.srv.TripService, cfg.PendingTTL, cfg.SweepEvery)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.reaper.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// buildEstimator picks the route source: no API key disables lookups, and a
// configured Redis puts a cache in front of the API.
func (a *Application) buildEstimator(ctx context.Context, cfg *config.Config) (routing.Estimator, error) {
	if cfg.MapsAPIKey == "" {
		zap.L().Warn("MAPS_API_KEY not set, route estimates disabled")
		return routing.Disabled{}, nil
	}
	google, err := routing.NewGoogleEstimator(cfg.MapsAPIKey)
	if err != nil {
		return nil, err
	}
	if cfg.RedisURL == "" {
		return google, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, route cache will fall through", zap.Error(err))
	}
	a.redis = client
	return routing.NewCached(google, routing.NewRedisCache(client, cfg.RouteTTL)), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.closeResources()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// closeResources runs once no more requests can arrive, so queued audit
// entries are flushed before the database goes away.
func (a *Application) closeResources() {
	if a.auditPool != nil {
		a.auditPool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
