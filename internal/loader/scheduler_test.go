package loader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestImporter() *Importer {
	return NewImporter(new(MockHistoricalSource), new(MockSnapshotWriter), new(MockCurrencyWriter), nil)
}

func TestNewScheduler_UsesProvidedInterval(t *testing.T) {
	s := NewScheduler(newTestImporter(), 42*time.Second)
	require.Equal(t, 42*time.Second, s.interval)
	require.False(t, s.running())
}

func TestNewScheduler_DefaultsIntervalWhenInvalid(t *testing.T) {
	s := NewScheduler(newTestImporter(), 0)
	require.Equal(t, defaultImportInterval, s.interval)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(newTestImporter(), time.Hour)
	require.NoError(t, s.Shutdown())
	require.False(t, s.running())
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(newTestImporter(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	cancel()

	require.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond,
		"expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewScheduler(newTestImporter(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Shutdown())
	require.False(t, s.running())
	require.NoError(t, s.Shutdown())
}
