package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxrates/internal/adapters/postgres"
	"fxrates/internal/domain"
	"fxrates/internal/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, db.Migrate(ctx, pool))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `truncate table rate_snapshots, currencies`)
	return err
}

func mustSnapshot(t *testing.T, date string, rates map[string]float64) domain.RateSnapshot {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	s, err := domain.NewRateSnapshot(d, "EUR", rates)
	require.NoError(t, err)
	return s
}

func mustDate(t *testing.T, raw string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(raw)
	require.NoError(t, err)
	return d
}

func seedSnapshots(t *testing.T, repo *postgres.SnapshotRepository) {
	t.Helper()
	inserted, err := repo.SaveSnapshots(context.Background(), []domain.RateSnapshot{
		mustSnapshot(t, "2024-03-01", map[string]float64{"USD": 1.08, "GBP": 0.85}),
		mustSnapshot(t, "2024-03-04", map[string]float64{"USD": 1.09, "GBP": 0.86}),
		mustSnapshot(t, "2024-03-05", map[string]float64{"USD": 1.10, "GBP": 0.87}),
	})
	require.NoError(t, err)
	require.Equal(t, 3, inserted)
}

// ---------- SnapshotRepository tests ----------

func TestSnapshotRepository_Latest_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	_, err := repo.Latest(context.Background())
	require.ErrorIs(t, err, domain.ErrNoDataAvailable)
}

func TestSnapshotRepository_Latest(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	seedSnapshots(t, repo)

	s, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2024-03-05", s.Date.String())
	require.Equal(t, domain.EUR, s.Anchor)
	require.InDelta(t, 1.10, s.Rates[domain.USD], 1e-12)
	require.InDelta(t, 0.87, s.Rates["GBP"], 1e-12)
}

func TestSnapshotRepository_LatestBefore(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	seedSnapshots(t, repo)
	ctx := context.Background()

	s, err := repo.LatestBefore(ctx, mustDate(t, "2024-03-04"))
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", s.Date.String())

	_, err = repo.LatestBefore(ctx, mustDate(t, "2024-03-01"))
	require.ErrorIs(t, err, domain.ErrNoDataAvailable)
}

func TestSnapshotRepository_Range(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	seedSnapshots(t, repo)
	ctx := context.Background()

	snapshots, err := repo.Range(ctx, mustDate(t, "2024-03-02"), mustDate(t, "2024-03-05"))
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	require.Equal(t, "2024-03-04", snapshots[0].Date.String())
	require.Equal(t, "2024-03-05", snapshots[1].Date.String())

	snapshots, err = repo.Range(ctx, mustDate(t, "2023-01-01"), mustDate(t, "2023-12-31"))
	require.NoError(t, err)
	require.Empty(t, snapshots)
}

func TestSnapshotRepository_SaveSnapshots_InsertOnly(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	seedSnapshots(t, repo)
	ctx := context.Background()

	inserted, err := repo.SaveSnapshots(ctx, []domain.RateSnapshot{
		mustSnapshot(t, "2024-03-05", map[string]float64{"USD": 9.99}),
		mustSnapshot(t, "2024-03-06", map[string]float64{"USD": 1.11}),
	})
	require.NoError(t, err)
	require.Equal(t, 1, inserted)

	s, err := repo.LatestBefore(ctx, mustDate(t, "2024-03-06"))
	require.NoError(t, err)
	require.InDelta(t, 1.10, s.Rates[domain.USD], 1e-12)
}

func TestSnapshotRepository_InvalidStoredRow(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `insert into rate_snapshots(date, anchor, rates) values ('2024-03-01', 'EUR', '{"USD": -1}')`)
	require.NoError(t, err)

	_, err = repo.Latest(ctx)
	require.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	require.NotErrorIs(t, err, domain.ErrNoDataAvailable)
}

func TestSnapshotRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Latest(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNoDataAvailable)

	_, err = repo.Range(ctx, mustDate(t, "2024-03-01"), mustDate(t, "2024-03-05"))
	require.Error(t, err)
}

// ---------- CurrencyRepository tests ----------

func TestCurrencyRepository_EnsureAndList(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)
	ctx := context.Background()

	inserted, err := repo.EnsureCurrencies(ctx, []domain.Currency{
		{Code: "USD", Name: "US Dollar", IsActive: true},
		{Code: "EUR", Name: "Euro", IsActive: true},
	})
	require.NoError(t, err)
	require.Equal(t, 2, inserted)

	_, err = pool.Exec(ctx, `insert into currencies(code, name, is_active) values ('XAU', 'Gold', false)`)
	require.NoError(t, err)

	// existing rows are left as they are
	inserted, err = repo.EnsureCurrencies(ctx, []domain.Currency{
		{Code: "USD", Name: "Renamed", IsActive: true},
		{Code: "GBP", Name: "Pound Sterling", IsActive: true},
	})
	require.NoError(t, err)
	require.Equal(t, 1, inserted)

	currencies, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Currency{
		{Code: "EUR", Name: "Euro", IsActive: true},
		{Code: "GBP", Name: "Pound Sterling", IsActive: true},
		{Code: "USD", Name: "US Dollar", IsActive: true},
	}, currencies)
}

func TestCurrencyRepository_ListActive_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.ListActive(ctx)
	require.Error(t, err)
}
