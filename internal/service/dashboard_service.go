package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/pkg/cache"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

const dashboardCacheKey = "dashboard:ozet"

type dashboardRepository interface {
	Ozet(ctx context.Context) (*models.DashboardOzeti, error)
}

type cacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

// DashboardService serves the aggregated counts behind the overview screen,
// optionally through a Redis cache.
type DashboardService struct {
	repo    dashboardRepository
	store   *cache.Store
	metrics cacheObserver
	logger  *zap.Logger
	ttl     time.Duration
	enabled bool
}

// NewDashboardService creates an instance of DashboardService. A nil store
// or a non-positive ttl disables caching.
func NewDashboardService(repo dashboardRepository, store *cache.Store, metrics cacheObserver, logger *zap.Logger, ttl time.Duration, enabled bool) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil || ttl <= 0 {
		enabled = false
	}
	return &DashboardService{repo: repo, store: store, metrics: metrics, logger: logger, ttl: ttl, enabled: enabled}
}

// Ozet returns the dashboard aggregation. Cache failures never surface to
// the caller; the database stays the source of truth.
func (s *DashboardService) Ozet(ctx context.Context) (*models.DashboardOzeti, error) {
	if s.enabled {
		started := time.Now()
		var cached models.DashboardOzeti
		err := s.store.Get(ctx, dashboardCacheKey, &cached)
		if err == nil {
			s.observeCache(true, time.Since(started))
			return &cached, nil
		}
		s.observeCache(false, time.Since(started))
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	ozet, err := s.repo.Ozet(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Özet hesaplanırken hata oluştu")
	}

	if s.enabled {
		if err := s.store.Set(ctx, dashboardCacheKey, ozet, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return ozet, nil
}

// Invalidate drops the cached aggregation after a write to the underlying
// records.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if !s.enabled {
		return
	}
	if err := s.store.Delete(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *DashboardService) observeCache(hit bool, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordCacheOperation(hit, duration)
}
