package rate

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxrates/internal/adapters"
	"fxrates/internal/domain"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL applies when the service is built without a positive TTL.
const DefaultTTL = time.Hour

type Service struct {
	snapshots  adapters.SnapshotRepository
	currencies adapters.CurrencyRepository
	cache      adapters.Cache
	ttl        time.Duration
	// collapses concurrent misses of one key into a single store read
	inflight singleflight.Group
}

// Cache keys are shared with other deployments of the service, keep them stable.
func latestKey(base domain.CurrencyCode) string { return "latest_rates_" + string(base) }

func previousKey(base domain.CurrencyCode) string { return "previous_rates_" + string(base) }

func historicalKey(from, to domain.CurrencyCode, period Period) string {
	return fmt.Sprintf("historical_rates_%s_%s_%s", from, to, period)
}

// GetLatest returns the most recent snapshot expressed against base.
func (s *Service) GetLatest(ctx context.Context, base domain.CurrencyCode) (SnapshotView, error) {
	return resolve(ctx, s, latestKey(base), func(ctx context.Context) (SnapshotView, error) {
		latest, err := s.latest(ctx)
		if err != nil {
			return SnapshotView{}, err
		}
		return projectSnapshot(latest, base)
	})
}

// GetPrevious returns the snapshot right before the most recent one, expressed against base.
func (s *Service) GetPrevious(ctx context.Context, base domain.CurrencyCode) (SnapshotView, error) {
	return resolve(ctx, s, previousKey(base), func(ctx context.Context) (SnapshotView, error) {
		latest, err := s.latest(ctx)
		if err != nil {
			return SnapshotView{}, err
		}
		previous, err := s.snapshots.LatestBefore(ctx, latest.Date)
		if err != nil {
			return SnapshotView{}, storeError(err, "previous snapshot")
		}
		return projectSnapshot(previous, base)
	})
}

// GetHistorical returns the from/to rate for every stored day of the period ending at the latest date.
func (s *Service) GetHistorical(ctx context.Context, from, to domain.CurrencyCode, period Period) (HistoricalView, error) {
	days, err := PeriodDays(period)
	if err != nil {
		return HistoricalView{}, err
	}

	return resolve(ctx, s, historicalKey(from, to, period), func(ctx context.Context) (HistoricalView, error) {
		latest, err := s.latest(ctx)
		if err != nil {
			return HistoricalView{}, err
		}
		snapshots, err := s.snapshots.Range(ctx, latest.Date.AddDays(-days), latest.Date)
		if err != nil {
			return HistoricalView{}, storeError(err, "snapshot range")
		}

		points := make([]HistoricalPoint, 0, len(snapshots))
		for _, snap := range snapshots {
			r, err := RateBetween(snap, from, to)
			if err != nil {
				return HistoricalView{}, err
			}
			points = append(points, HistoricalPoint{Date: snap.Date, Rate: r})
		}
		return HistoricalView{From: from, To: to, Period: period, Data: points}, nil
	})
}

// Convert prices amount of from in to at the latest rate. It never goes through the cache.
func (s *Service) Convert(ctx context.Context, rawAmount string, from, to domain.CurrencyCode) (ConversionView, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return ConversionView{}, err
	}
	latest, err := s.latest(ctx)
	if err != nil {
		return ConversionView{}, err
	}
	r, err := RateBetween(latest, from, to)
	if err != nil {
		return ConversionView{}, err
	}

	return ConversionView{
		From:   from,
		To:     to,
		Amount: Decimal{amount},
		Rate:   r,
		Result: Decimal{amount.Mul(decimal.NewFromFloat(r))},
		Date:   latest.Date,
	}, nil
}

// ListCurrencies returns active currencies ordered by code.
func (s *Service) ListCurrencies(ctx context.Context) ([]CurrencyView, error) {
	currencies, err := s.currencies.ListActive(ctx)
	if err != nil {
		return nil, storeError(err, "active currencies")
	}
	views := projectCurrencies(currencies)
	slices.SortFunc(views, func(a, b CurrencyView) int { return cmp.Compare(a.Code, b.Code) })
	return views, nil
}

// CurrencyNames maps every active currency code to its display name.
func (s *Service) CurrencyNames(ctx context.Context) (map[domain.CurrencyCode]string, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[domain.CurrencyCode]string, len(currencies))
	for _, c := range currencies {
		names[c.Code] = c.Name
	}
	return names, nil
}

func (s *Service) latest(ctx context.Context) (domain.RateSnapshot, error) {
	latest, err := s.snapshots.Latest(ctx)
	if err != nil {
		return domain.RateSnapshot{}, storeError(err, "latest snapshot")
	}
	return latest, nil
}

// resolve serves key from the cache or computes it and stores the result for the service TTL.
func resolve[T any](ctx context.Context, s *Service, key string, compute func(context.Context) (T, error)) (T, error) {
	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached T
		err := json.Unmarshal(payload, &cached)
		if err == nil {
			return cached, nil
		}
		logrus.WithError(err).WithField("key", key).Warn("Discarding undecodable cache entry")
	}

	// The flight outlives any single caller; each caller still gives up on its own context.
	flight := s.inflight.DoChan(key, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)
		computed, err := compute(flightCtx)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(computed)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q for cache: %w", key, err)
		}
		s.cache.SetWithTTL(flightCtx, key, payload, s.ttl)
		return computed, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, key, ctx.Err())
	case res := <-flight:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func storeError(err error, what string) error {
	if errors.Is(err, domain.ErrNoDataAvailable) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%w: failed to load %s: %w", domain.ErrStoreUnavailable, what, err)
}

func NewService(snapshots adapters.SnapshotRepository, currencies adapters.CurrencyRepository, cache adapters.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{snapshots: snapshots, currencies: currencies, cache: cache, ttl: ttl}
}
