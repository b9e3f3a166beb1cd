package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxrates/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

const selectSnapshots = `select date, anchor, rates from rate_snapshots`

func (r *SnapshotRepository) Latest(ctx context.Context) (domain.RateSnapshot, error) {
	const q = selectSnapshots + ` order by date desc limit 1;`

	snapshot, err := scanSnapshot(r.pool.QueryRow(ctx, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateSnapshot{}, domain.ErrNoDataAvailable
		}
		return domain.RateSnapshot{}, fmt.Errorf("failed to select latest snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *SnapshotRepository) LatestBefore(ctx context.Context, date domain.Date) (domain.RateSnapshot, error) {
	const q = selectSnapshots + ` where date < $1 order by date desc limit 1;`

	snapshot, err := scanSnapshot(r.pool.QueryRow(ctx, q, date.Time))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateSnapshot{}, domain.ErrNoDataAvailable
		}
		return domain.RateSnapshot{}, fmt.Errorf("failed to select snapshot before %s: %w", date, err)
	}
	return snapshot, nil
}

// Range returns snapshots dated within [start, end], oldest first.
func (r *SnapshotRepository) Range(ctx context.Context, start, end domain.Date) ([]domain.RateSnapshot, error) {
	const q = selectSnapshots + ` where date between $1 and $2 order by date;`

	rows, err := r.pool.Query(ctx, q, start.Time, end.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots from %s to %s: %w", start, end, err)
	}
	defer rows.Close()

	snapshots := make([]domain.RateSnapshot, 0, 64)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}
	return snapshots, nil
}

// SaveSnapshots inserts snapshots whose date is not stored yet. Stored snapshots are never rewritten.
func (r *SnapshotRepository) SaveSnapshots(ctx context.Context, snapshots []domain.RateSnapshot) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	const q = `
		insert into rate_snapshots(date, anchor, rates)
		values ($1, $2, $3::jsonb)
		on conflict (date) do nothing;
	`

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		payload, err := json.Marshal(s.Rates)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal rates for %s: %w", s.Date, err)
		}
		batch.Queue(q, s.Date.Time, string(s.Anchor), string(payload))
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for range snapshots {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("failed to insert snapshot: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err = results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

// scanSnapshot validates rows on the way out so invalid data never reaches the converter.
func scanSnapshot(row pgx.Row) (domain.RateSnapshot, error) {
	var (
		date   time.Time
		anchor string
		rates  map[string]float64
	)
	if err := row.Scan(&date, &anchor, &rates); err != nil {
		return domain.RateSnapshot{}, err
	}
	snapshot, err := domain.NewRateSnapshot(domain.DateOf(date), anchor, rates)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("stored snapshot rejected: %w", err)
	}
	return snapshot, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
