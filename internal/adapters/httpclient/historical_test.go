package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoricalClient_Success(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "base": "EUR",
            "rates": {
                "2024-03-01": {"USD": 1.08, "JPY": 162.1},
                "2024-03-04": {"USD": 1.09}
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewHistoricalClient(srv.Client(), srv.URL+"/exports/history.json")

	dump, err := c.FetchHistorical(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/exports/history.json", gotPath)
	require.Equal(t, "application/json", gotAccept)
	require.Equal(t, "EUR", dump.Base)
	require.Len(t, dump.Rates, 2)
	require.InDelta(t, 162.1, dump.Rates["2024-03-01"]["JPY"], 1e-9)
}

func TestHistoricalClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewHistoricalClient(srv.Client(), srv.URL+"/history.json")

	_, err := c.FetchHistorical(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestHistoricalClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewHistoricalClient(srv.Client(), srv.URL+"/history.json")

	_, err := c.FetchHistorical(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode historical rates")
}

func TestHistoricalClient_MissingBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates": {"2024-03-01": {"USD": 1.08}}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHistoricalClient(srv.Client(), srv.URL+"/history.json")

	_, err := c.FetchHistorical(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no base currency")
}

func TestHistoricalClient_SourceURLParseError(t *testing.T) {
	c := NewHistoricalClient(&http.Client{}, "http://::1]")
	_, err := c.FetchHistorical(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse source URL")
}
