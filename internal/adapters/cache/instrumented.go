package cache

import (
	"context"
	"fxrates/internal/adapters"
	"fxrates/internal/metrics"
	"strings"
	"time"
)

// Instrumented counts lookups and writes of the wrapped cache per key family ("latest", "historical", ...).
type Instrumented struct {
	next    adapters.Cache
	metrics *metrics.Metrics
}

func NewInstrumented(next adapters.Cache, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, ok := c.next.Get(ctx, key)
	result := "miss"
	if ok {
		result = "hit"
	}
	c.metrics.CacheLookupsTotal.WithLabelValues(family(key), result).Inc()
	return payload, ok
}

// SetWithTTL counts attempted writes; backends drop writes silently, so the counter is not a stored-entry count.
func (c *Instrumented) SetWithTTL(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	c.next.SetWithTTL(ctx, key, payload, ttl)
	c.metrics.CacheWritesTotal.WithLabelValues(family(key)).Inc()
}

func family(key string) string {
	f, _, _ := strings.Cut(key, "_")
	return f
}
