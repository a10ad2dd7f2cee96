package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lending/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/price/btc", r.URL.Path)

		_ = json.NewEncoder(w).Encode(core.PriceQuote{
			AssetID:   "btc",
			Price:     decimal.NewFromInt(50000),
			UpdatedAt: time.Now(),
		})
	}))
	defer server.Close()

	gateway := New(Config{EndPoint: server.URL})

	quote, err := gateway.LatestPrice(context.Background(), "btc")
	require.NoError(t, err)
	assert.Equal(t, "btc", quote.AssetID)
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(50000)))
}

func TestLatestPriceStale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(core.PriceQuote{
			AssetID:   "btc",
			Price:     decimal.NewFromInt(50000),
			UpdatedAt: time.Now().Add(-time.Hour),
		})
	}))
	defer server.Close()

	gateway := New(Config{EndPoint: server.URL, StaleAfter: 5 * time.Minute})

	_, err := gateway.LatestPrice(context.Background(), "btc")
	assert.ErrorIs(t, err, core.ErrStalePrice)
}

func TestLatestPriceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gateway := New(Config{EndPoint: server.URL})

	_, err := gateway.LatestPrice(context.Background(), "btc")
	assert.ErrorIs(t, err, core.ErrOracleUnavailable)
}

func TestLatestPriceInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(core.PriceQuote{
			AssetID:   "btc",
			Price:     decimal.Zero,
			UpdatedAt: time.Now(),
		})
	}))
	defer server.Close()

	gateway := New(Config{EndPoint: server.URL})

	_, err := gateway.LatestPrice(context.Background(), "btc")
	assert.ErrorIs(t, err, core.ErrOracleUnavailable)
}

func TestLatestPriceCached(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(core.PriceQuote{
			AssetID:   "btc",
			Price:     decimal.NewFromInt(50000),
			UpdatedAt: time.Now(),
		})
	}))
	defer server.Close()

	gateway := New(Config{EndPoint: server.URL, CacheTTL: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := gateway.LatestPrice(context.Background(), "btc")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, hits)
}
