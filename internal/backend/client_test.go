package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/backend"
	"github.com/davidbz/unitecon/internal/domain"
)

const (
	adaptersBody = `[{
		"name": "openai",
		"display_name": "OpenAI",
		"type": "llm",
		"models": [{"id": "gpt-4o", "type": "chat", "pricing": {"input_per_1k": 0.0025, "output_per_1k": 0.01}}]
	}]`

	pricesBody = `[{
		"model_name": "veo-3",
		"provider": "replicate",
		"price_type": "per_second",
		"price_usd": 0.5,
		"is_active": true,
		"replicate_model_id": "google/veo-3",
		"price_variants": {"8s": {"price_usd": 6}, "constraints": {}, "4s": {"price_per_second": 0.4, "duration": 4}}
	}]`

	mixedPricesBody = `[
		{"model_name": "kling-v2", "provider": "replicate", "price_type": "per_second", "price_usd": 0.056, "is_active": true},
		{"model_name": "veo-3", "provider": "replicate", "price_type": "per_second", "price_usd": "0.5", "price_variants": []},
		{"model_name": 17, "provider": "replicate"},
		"garbage",
		{"model_name": "flux-schnell", "provider": "replicate", "price_type": "per_image", "price_usd": 0.003, "price_variants": "none"}
	]`

	statsBody = `{
		"replicate:veo-3": {"request_count": 12, "avg_video_duration": 6.5, "avg_provider_cost": 3.1},
		"openai:gpt-4o": {"request_count": 0}
	}`
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/adapters", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(adaptersBody))
	})
	mux.HandleFunc("GET /api/provider-prices", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pricesBody))
	})
	mux.HandleFunc("GET /api/stats/models", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(statsBody))
	})
	mux.HandleFunc("GET /mixed-prices", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(mixedPricesBody))
	})
	mux.HandleFunc("GET /mixed-stats", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"fal:flux": {"request_count": "9"}, "fal:broken": "oops", "fal:sdxl": {"request_count": 4.0}}`))
	})
	mux.HandleFunc("GET /broken", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "database unavailable", http.StatusBadGateway)
	})
	mux.HandleFunc("GET /garbage", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) *backend.Config {
	return &backend.Config{
		BaseURL:      baseURL + "/",
		APIToken:     "secret",
		AdaptersPath: "/api/adapters",
		PricesPath:   "/api/provider-prices",
		StatsPath:    "/api/stats/models",
		Timeout:      5,
	}
}

func TestClient_FetchAdapters(t *testing.T) {
	server := newTestServer(t)
	client := backend.NewClient(testConfig(server.URL))

	adapters, err := client.FetchAdapters(context.Background())
	require.NoError(t, err)
	require.Len(t, adapters, 1)
	require.Equal(t, "openai", adapters[0].Name)
	require.Len(t, adapters[0].Models, 1)
	require.InDelta(t, 0.01, adapters[0].Models[0].Pricing.OutputPer1K, 1e-12)
}

func TestClient_FetchProviderPrices(t *testing.T) {
	server := newTestServer(t)
	client := backend.NewClient(testConfig(server.URL))

	prices, err := client.FetchProviderPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 1)

	variants := prices[0].PriceVariants
	require.Len(t, variants, 2)
	require.Equal(t, "8s", variants[0].Key)
	require.Equal(t, "4s", variants[1].Key)
}

func TestClient_FetchStats(t *testing.T) {
	server := newTestServer(t)
	client := backend.NewClient(testConfig(server.URL))

	stats, err := client.FetchStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	veo := stats["replicate:veo-3"]
	require.Equal(t, int64(12), veo.RequestCount)
	require.InDelta(t, 6.5, *veo.AvgDurationSeconds, 1e-12)
	require.Nil(t, veo.AvgTotalTokens)
	require.Equal(t, domain.HistoricalStat{RequestCount: 0}, stats["openai:gpt-4o"])
}

func TestClient_SkipsMalformedRecords(t *testing.T) {
	server := newTestServer(t)

	t.Run("provider prices", func(t *testing.T) {
		cfg := testConfig(server.URL)
		cfg.PricesPath = "/mixed-prices"

		prices, err := backend.NewClient(cfg).FetchProviderPrices(context.Background())
		require.NoError(t, err)
		require.Len(t, prices, 3)
		require.Equal(t, "kling-v2", prices[0].ModelName)
		require.Equal(t, "veo-3", prices[1].ModelName)
		require.InDelta(t, 0.5, prices[1].PriceUSD, 1e-12)
		require.Empty(t, prices[1].PriceVariants)
		require.Equal(t, "flux-schnell", prices[2].ModelName)

		entities := domain.NormalizeCatalog(nil, prices)
		require.Len(t, entities, 3)
	})

	t.Run("stats", func(t *testing.T) {
		cfg := testConfig(server.URL)
		cfg.StatsPath = "/mixed-stats"

		stats, err := backend.NewClient(cfg).FetchStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 2)
		require.Equal(t, int64(9), stats["fal:flux"].RequestCount)
		require.Equal(t, int64(4), stats["fal:sdxl"].RequestCount)
	})
}

func TestClient_Errors(t *testing.T) {
	server := newTestServer(t)

	t.Run("non-2xx status", func(t *testing.T) {
		cfg := testConfig(server.URL)
		cfg.StatsPath = "/broken"

		_, err := backend.NewClient(cfg).FetchStats(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "status 502")
		require.Contains(t, err.Error(), "database unavailable")
	})

	t.Run("undecodable body", func(t *testing.T) {
		cfg := testConfig(server.URL)
		cfg.PricesPath = "/garbage"

		_, err := backend.NewClient(cfg).FetchProviderPrices(context.Background())
		require.ErrorContains(t, err, "failed to decode response")
	})

	t.Run("wrong token", func(t *testing.T) {
		cfg := testConfig(server.URL)
		cfg.APIToken = "other"

		_, err := backend.NewClient(cfg).FetchAdapters(context.Background())
		require.ErrorContains(t, err, "status 401")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := backend.NewClient(testConfig(server.URL)).FetchAdapters(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
