package loader

import (
	"context"
	"fxrates/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockHistoricalSource struct{ mock.Mock }

func (m *MockHistoricalSource) FetchHistorical(ctx context.Context) (domain.RateDump, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateDump), args.Error(1)
}

type MockSnapshotWriter struct{ mock.Mock }

func (m *MockSnapshotWriter) SaveSnapshots(ctx context.Context, snapshots []domain.RateSnapshot) (int, error) {
	args := m.Called(ctx, snapshots)
	return args.Int(0), args.Error(1)
}

type MockCurrencyWriter struct{ mock.Mock }

func (m *MockCurrencyWriter) EnsureCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	args := m.Called(ctx, currencies)
	return args.Int(0), args.Error(1)
}
