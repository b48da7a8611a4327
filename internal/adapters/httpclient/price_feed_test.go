package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPriceFeedClient_Success(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
            {"currency": "BTC", "date": "2024-01-01T00:00:00.000Z", "price": 50000},
            {"currency": "BTC", "date": "2024-01-02T10:30:00+02:00", "price": 51000.5},
            {"currency": "ETH", "date": "2024-01-01", "price": 3000}
        ]`))
	}))
	t.Cleanup(srv.Close)

	c := NewPriceFeedClient(srv.Client(), srv.URL+"/prices.json")

	obs, err := c.FetchObservations(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/prices.json", gotPath)
	require.Equal(t, "application/json", gotAccept)
	require.Len(t, obs, 3)

	require.Equal(t, "BTC", obs[0].Currency)
	require.InDelta(t, 50000.0, obs[0].Price, 1e-9)
	require.True(t, obs[0].Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	require.InDelta(t, 51000.5, obs[1].Price, 1e-9)
	require.True(t, obs[1].Date.Equal(time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)))

	require.Equal(t, "ETH", obs[2].Currency)
	require.True(t, obs[2].Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPriceFeedClient_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	obs, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.NoError(t, err)
	require.NotNil(t, obs)
	require.Empty(t, obs)
}

func TestPriceFeedClient_KeepsCurrencyAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"currency": " usd ", "date": "2024-01-01", "price": "1.5"}]`))
	}))
	t.Cleanup(srv.Close)

	obs, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.NoError(t, err)
	require.Equal(t, " usd ", obs[0].Currency)
	require.InDelta(t, 1.5, obs[0].Price, 1e-9)
}

func TestPriceFeedClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestPriceFeedClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	_, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid json")
}

func TestPriceFeedClient_NotAnArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"currency": "BTC"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected an array")
}

func TestPriceFeedClient_BadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
            {"currency": "BTC", "date": "2024-01-01", "price": 1},
            {"currency": "ETH", "date": "yesterday", "price": 2}
        ]`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "entry 1")
	require.Contains(t, err.Error(), `unsupported date "yesterday"`)
}

func TestPriceFeedClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPriceFeedClient(srv.Client(), srv.URL).FetchObservations(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to execute price feed request")
}

func TestPriceFeedClient_Name(t *testing.T) {
	c := NewPriceFeedClient(http.DefaultClient, "https://example.com/prices.json")
	require.Equal(t, "http:https://example.com/prices.json", c.Name())
}
