package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// Ristretto is an in-process payload cache. Entries expire by TTL; maxItems bounds the entry count.
type Ristretto struct {
	cache *ristretto.Cache
}

func NewRistretto(maxItems int64) (*Ristretto, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// every entry costs 1 so MaxCost is an item count
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache failed: %w", err)
	}
	return &Ristretto{cache: c}, nil
}

func (c *Ristretto) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	payload, ok := v.([]byte)
	return payload, ok
}

// SetWithTTL waits for the write buffer so the entry is visible to the next Get.
func (c *Ristretto) SetWithTTL(_ context.Context, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if !c.cache.SetWithTTL(key, payload, 1, ttl) {
		logrus.WithField("key", key).Warn("Cache write was dropped")
		return
	}
	c.cache.Wait()
}

func (c *Ristretto) Close() { c.cache.Close() }
