package app

import (
	"context"
	"testing"

	"fxrates/internal/adapters/cache"
	"fxrates/internal/adapters/httpclient"
	"fxrates/internal/adapters/jsonfile"
	"fxrates/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewCache_Memory(t *testing.T) {
	c, closeFn, err := newCache(context.Background(), &config.AppConfig{
		Cache: config.Cache{Backend: "memory", MaxItems: 16},
	})
	require.NoError(t, err)
	defer closeFn()
	require.IsType(t, &cache.Ristretto{}, c)
}

func TestNewCache_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, closeFn, err := newCache(context.Background(), &config.AppConfig{
		Cache: config.Cache{Backend: "redis"},
		Redis: config.Redis{Addr: mr.Addr(), Prefix: "fx:", TimeoutMillis: 200},
	})
	require.NoError(t, err)
	defer closeFn()
	require.IsType(t, &cache.Redis{}, c)
}

func TestHistoricalSource(t *testing.T) {
	remote := historicalSource(&config.AppConfig{Loader: config.Loader{Source: "https://example.org/history.json"}})
	require.IsType(t, &httpclient.HistoricalClient{}, remote)

	local := historicalSource(&config.AppConfig{Loader: config.Loader{Source: "./history.json"}})
	require.IsType(t, &jsonfile.HistoricalFile{}, local)
}
