package loader

import (
	"context"
	"fmt"
	"fxrates/internal/adapters"
	"fxrates/internal/domain"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stats summarizes one import run.
type Stats struct {
	Dates              int
	Rejected           int
	SnapshotsInserted  int
	CurrenciesInserted int
}

// Importer copies a historical rates export into the snapshot store.
type Importer struct {
	source     adapters.HistoricalSource
	snapshots  adapters.SnapshotWriter
	currencies adapters.CurrencyWriter
	names      map[domain.CurrencyCode]string
}

// Import fetches the export, validates every dated row and stores the snapshots that are new.
// Invalid rows are logged and skipped; a broken anchor fails the whole run.
func (im *Importer) Import(ctx context.Context, execID string) (Stats, error) {
	// STEP 1: reading the export
	dump, err := im.source.FetchHistorical(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to fetch historical rates: %w", err)
	}
	anchor, err := domain.ParseCurrencyCode(dump.Base)
	if err != nil {
		return Stats{}, fmt.Errorf("historical rates base: %w", err)
	}

	stats := Stats{Dates: len(dump.Rates)}
	logrus.Infof("%d dates found for anchor %s, start importing; execID: %s", stats.Dates, anchor, execID)

	// STEP 2: turning rows into validated snapshots, oldest first
	snapshots := make([]domain.RateSnapshot, 0, len(dump.Rates))
	seen := map[domain.CurrencyCode]struct{}{anchor: {}}
	for _, rawDate := range slices.Sorted(maps.Keys(dump.Rates)) {
		snapshot, buildErr := buildSnapshot(rawDate, anchor, dump.Rates[rawDate])
		if buildErr != nil {
			stats.Rejected++
			logrus.WithError(buildErr).WithField("date", rawDate).Warn("skipping historical rates row")
			continue
		}
		snapshots = append(snapshots, snapshot)
		for code := range snapshot.Rates {
			seen[code] = struct{}{}
		}
	}

	// STEP 3: storing snapshots, then registering every currency they mention
	stats.SnapshotsInserted, err = im.snapshots.SaveSnapshots(ctx, snapshots)
	if err != nil {
		return stats, fmt.Errorf("failed to save snapshots: %w", err)
	}

	stats.CurrenciesInserted, err = im.currencies.EnsureCurrencies(ctx, im.currencyList(seen))
	if err != nil {
		return stats, fmt.Errorf("failed to register currencies: %w", err)
	}

	logrus.Infof("%d snapshots and %d currencies inserted, %d rows rejected; execID: %s",
		stats.SnapshotsInserted, stats.CurrenciesInserted, stats.Rejected, execID)
	return stats, nil
}

// buildSnapshot drops the anchor's own entry when it is exactly 1; any other self-rate is rejected.
func buildSnapshot(rawDate string, anchor domain.CurrencyCode, rates map[string]float64) (domain.RateSnapshot, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return domain.RateSnapshot{}, err
	}

	filtered := make(map[string]float64, len(rates))
	for raw, value := range rates {
		if code, parseErr := domain.ParseCurrencyCode(raw); parseErr == nil && code == anchor && value == 1 {
			continue
		}
		filtered[raw] = value
	}
	return domain.NewRateSnapshot(date, string(anchor), filtered)
}

func (im *Importer) currencyList(codes map[domain.CurrencyCode]struct{}) []domain.Currency {
	currencies := make([]domain.Currency, 0, len(codes))
	for _, code := range slices.Sorted(maps.Keys(codes)) {
		name, ok := im.names[code]
		if !ok || name == "" {
			name = string(code)
		}
		currencies = append(currencies, domain.Currency{Code: code, Name: name, IsActive: true})
	}
	return currencies
}

// NewImporter builds an importer; names maps currency codes to display names and may be nil.
func NewImporter(source adapters.HistoricalSource, snapshots adapters.SnapshotWriter, currencies adapters.CurrencyWriter, names map[string]string) *Importer {
	normalized := make(map[domain.CurrencyCode]string, len(names))
	for raw, name := range names {
		normalized[domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))] = strings.TrimSpace(name)
	}
	return &Importer{source: source, snapshots: snapshots, currencies: currencies, names: normalized}
}
