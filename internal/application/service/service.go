package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mkravets/shop-analytics/internal/config"
	"github.com/mkravets/shop-analytics/internal/domain"
	"github.com/mkravets/shop-analytics/internal/observability"
)

//go:generate mockgen -source service.go -destination=repo_mock_test.go -package=service

// Report names, used as cache key prefixes and invalidation targets.
const (
	ReportOverview  = "overview"
	ReportSales     = "sales"
	ReportUsers     = "users"
	ReportInventory = "inventory"
)

var reportNames = []string{ReportOverview, ReportSales, ReportUsers, ReportInventory}

type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, payload []byte)
	Invalidate(key string)
	InvalidatePrefix(prefix string)
	InvalidateAll()
}

type OrderReader interface {
	All(ctx context.Context) ([]domain.Order, error)
	Count(ctx context.Context) (int, error)
	CreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
	Recent(ctx context.Context, limit int) ([]domain.Order, error)
}

type ProductReader interface {
	All(ctx context.Context) ([]domain.Product, error)
	BySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
}

type UserReader interface {
	All(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	ByIDs(ctx context.Context, ids []string) (map[string]domain.User, error)
}

type Repositories struct {
	Orders   OrderReader
	Products ProductReader
	Users    UserReader
}

type Options struct {
	RepoTimeout time.Duration
	Retry       config.Retry
}

// Service generates the dashboard reports. Every report follows the same
// flow: consult the cache, on a miss recompute from the repositories and
// store the marshaled payload. Payloads are cached as raw JSON so a hit is
// byte for byte what the miss produced.
type Service struct {
	repos   Repositories
	cache   Cache
	clock   clockwork.Clock
	logger  *zap.Logger
	metrics observability.Metrics
	opts    Options
	flight  singleflight.Group
}

func New(repos Repositories, cache Cache, clock clockwork.Clock, logger *zap.Logger, metrics observability.Metrics, opts Options) *Service {
	return &Service{
		repos:   repos,
		cache:   cache,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// generate is the shared cache-or-compute path. Concurrent misses for the
// same key collapse into one computation via singleflight; that is an
// optimization only, a lost race just means a double compute and the last
// Put wins. A canceled request discards its result instead of caching it.
func (s *Service) generate(ctx context.Context, report, key string, compute func(ctx context.Context) (any, error)) (json.RawMessage, error) {
	if b, ok := s.cache.Get(key); ok {
		s.metrics.IncCacheHit(report)
		s.logger.Debug("report served from cache",
			zap.String("report", report),
			zap.String("key", key),
		)
		return json.RawMessage(b), nil
	}
	s.metrics.IncCacheMiss(report)

	t0 := s.clock.Now()
	v, err, shared := s.flight.Do(key, func() (any, error) {
		cctx := ctx
		if s.opts.RepoTimeout > 0 {
			var cancel context.CancelFunc
			cctx, cancel = context.WithTimeout(ctx, s.opts.RepoTimeout)
			defer cancel()
		}
		rep, err := compute(cctx)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(rep)
		if err != nil {
			return nil, err
		}
		if cctx.Err() != nil {
			// Caller went away or the deadline passed mid-computation:
			// drop the result, never cache a partial report.
			return nil, cctx.Err()
		}
		s.cache.Put(key, b)
		return b, nil
	})
	if err != nil {
		s.logger.Error("report generation failed",
			zap.String("report", report),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	durMs := float64(s.clock.Since(t0).Microseconds()) / 1000.0
	s.metrics.ObserveReport(report, durMs)
	s.logger.Info("report generated",
		zap.String("report", report),
		zap.String("key", key),
		zap.Bool("shared", shared),
		zap.Float64("dur_ms", durMs),
	)
	return json.RawMessage(v.([]byte)), nil
}

// InvalidateReports clears one named report cache, or everything when key is
// empty. Safe to call while generates are in flight: a racing Put may
// survive, and the next Get re-derives truth from the TTL check.
func (s *Service) InvalidateReports(key string) error {
	if key == "" {
		s.cache.InvalidateAll()
		s.metrics.IncInvalidation("all")
		s.logger.Info("all report caches cleared")
		return nil
	}
	for _, name := range reportNames {
		if key == name {
			s.cache.InvalidatePrefix(name)
			s.metrics.IncInvalidation(name)
			s.logger.Info("report cache cleared", zap.String("report", name))
			return nil
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownReport, key)
}
