package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"fxrates/internal/domain"
	"net/http"
	"net/url"
)

// HistoricalClient downloads a full historical rates export from a single URL.
type HistoricalClient struct {
	http      *http.Client
	sourceURL string
}

func (c *HistoricalClient) FetchHistorical(ctx context.Context) (domain.RateDump, error) {
	u, err := url.Parse(c.sourceURL)
	if err != nil {
		return domain.RateDump{}, fmt.Errorf("failed to parse source URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.RateDump{}, fmt.Errorf("failed to create request for %s: %w", u.Host, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RateDump{}, fmt.Errorf("failed to execute request for %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.RateDump{}, fmt.Errorf("unexpected status code %d from %s: %s", resp.StatusCode, u.Host, resp.Status)
	}

	var dump domain.RateDump
	if err = json.NewDecoder(resp.Body).Decode(&dump); err != nil {
		return domain.RateDump{}, fmt.Errorf("failed to decode historical rates from %s: %w", u.Host, err)
	}
	if dump.Base == "" {
		return domain.RateDump{}, fmt.Errorf("historical rates from %s carry no base currency", u.Host)
	}

	return dump, nil
}

func NewHistoricalClient(httpClient *http.Client, sourceURL string) *HistoricalClient {
	return &HistoricalClient{http: httpClient, sourceURL: sourceURL}
}
