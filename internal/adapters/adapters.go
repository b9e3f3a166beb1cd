package adapters

import (
	"context"
	"fxrates/internal/domain"
	"time"
)

// SnapshotRepository reads daily rate snapshots.
// Lookups that match nothing return domain.ErrNoDataAvailable.
type SnapshotRepository interface {
	Latest(ctx context.Context) (domain.RateSnapshot, error)
	LatestBefore(ctx context.Context, date domain.Date) (domain.RateSnapshot, error)
	Range(ctx context.Context, start, end domain.Date) ([]domain.RateSnapshot, error)
}

// SnapshotWriter appends snapshots; dates already stored are skipped, never rewritten.
type SnapshotWriter interface {
	SaveSnapshots(ctx context.Context, snapshots []domain.RateSnapshot) (int, error)
}

type CurrencyWriter interface {
	EnsureCurrencies(ctx context.Context, currencies []domain.Currency) (int, error)
}

type CurrencyRepository interface {
	ListActive(ctx context.Context) ([]domain.Currency, error)
}

// Cache stores serialized payloads under opaque keys.
// Backend failures never reach the caller: Get reports a miss and SetWithTTL only logs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	SetWithTTL(ctx context.Context, key string, payload []byte, ttl time.Duration)
}

type HistoricalSource interface {
	FetchHistorical(ctx context.Context) (domain.RateDump, error)
}
