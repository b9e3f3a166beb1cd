package postgres

import (
	"context"
	"fmt"
	"fxrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func (r *CurrencyRepository) ListActive(ctx context.Context) ([]domain.Currency, error) {
	const q = `select code, name, is_active from currencies where is_active order by code;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0, 64)
	for rows.Next() {
		var (
			c    domain.Currency
			code string
		)
		if err = rows.Scan(&code, &c.Name, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		c.Code = domain.CurrencyCode(code)
		currencies = append(currencies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}

// EnsureCurrencies inserts unknown currencies and leaves existing names and flags untouched.
func (r *CurrencyRepository) EnsureCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	if len(currencies) == 0 {
		return 0, nil
	}

	const q = `
		insert into currencies(code, name, is_active)
		values ($1, $2, $3)
		on conflict (code) do nothing;
	`

	batch := &pgx.Batch{}
	for _, c := range currencies {
		batch.Queue(q, string(c.Code), c.Name, c.IsActive)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	inserted := 0
	for _, c := range currencies {
		tag, err := results.Exec()
		if err != nil {
			return 0, fmt.Errorf("failed to insert currency %s: %w", c.Code, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}
