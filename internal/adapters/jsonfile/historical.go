package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"fxrates/internal/domain"
	"os"
)

// HistoricalFile reads a historical rates export from disk on every fetch.
type HistoricalFile struct {
	path string
}

func (f *HistoricalFile) FetchHistorical(ctx context.Context) (domain.RateDump, error) {
	if err := ctx.Err(); err != nil {
		return domain.RateDump{}, err
	}

	var dump domain.RateDump
	if err := readJSON(f.path, &dump); err != nil {
		return domain.RateDump{}, err
	}
	if dump.Base == "" {
		return domain.RateDump{}, fmt.Errorf("historical rates file %s carries no base currency", f.path)
	}
	return dump, nil
}

func NewHistoricalFile(path string) *HistoricalFile {
	return &HistoricalFile{path: path}
}

// ReadCurrencyNames loads a {code: display name} document. An empty path yields no names.
func ReadCurrencyNames(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	names := make(map[string]string)
	if err := readJSON(path, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func readJSON(path string, dst any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err = json.NewDecoder(file).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
