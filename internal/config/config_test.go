package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, 10, cfg.Server.ShutdownTimeout)
		require.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
		require.Equal(t, "/api/adapters", cfg.Backend.AdaptersPath)
		require.Equal(t, 30, cfg.Backend.Timeout)
		require.Empty(t, cfg.Backend.APIToken)
		require.Equal(t, "sqlite", cfg.Store.Driver)
		require.Equal(t, "unitecon.scenarios", cfg.Store.Namespace)
		require.InDelta(t, 990.0, cfg.Defaults.SubscriptionPrice, 1e-9)
		require.Equal(t, "RUB", cfg.Defaults.Currency)
		require.Equal(t, 3000, cfg.Defaults.CreditsInPlan)
		require.Equal(t, 500, cfg.Defaults.RequestsInPlan)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("BACKEND_BASE_URL", "https://admin.example.com")
		t.Setenv("BACKEND_API_TOKEN", "token")
		t.Setenv("BACKEND_TIMEOUT", "5")
		t.Setenv("STORE_DRIVER", "redis")
		t.Setenv("STORE_REDIS_ADDR", "redis:6379")
		t.Setenv("STORE_REDIS_DB", "2")
		t.Setenv("SCENARIO_NAMESPACE", "team.scenarios")
		t.Setenv("DEFAULT_CURRENCY", "USD")
		t.Setenv("DEFAULT_OVERHEAD_PERCENT", "7.5")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "https://admin.example.com", cfg.Backend.BaseURL)
		require.Equal(t, "token", cfg.Backend.APIToken)
		require.Equal(t, 5, cfg.Backend.Timeout)
		require.Equal(t, "redis", cfg.Store.Driver)
		require.Equal(t, "redis:6379", cfg.Store.RedisAddr)
		require.Equal(t, 2, cfg.Store.RedisDB)
		require.Equal(t, "team.scenarios", cfg.Store.Namespace)
		require.Equal(t, "USD", cfg.Defaults.Currency)
		require.InDelta(t, 7.5, cfg.Defaults.OverheadPercent, 1e-9)
		require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	})
}

func TestDefaultsConfig_Inputs(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	inputs := cfg.Defaults.Inputs("openai:gpt-4o")

	require.Equal(t, "openai:gpt-4o", inputs.EntityID)
	require.Equal(t, domain.CurrencyRUB, inputs.Plan.Currency)
	require.InDelta(t, 95.0, inputs.Plan.USDExchangeRate, 1e-9)
	require.InDelta(t, 15.0, inputs.Plan.OverheadPercent, 1e-9)
	require.Equal(t, 500, inputs.Usage.AvgInputTokens)
	require.Equal(t, 1000, inputs.Usage.AvgOutputTokens)
	require.InDelta(t, 5.0, inputs.Usage.AvgDurationSeconds, 1e-9)
	require.Equal(t, domain.PricingModeBase, inputs.Usage.PricingMode)
	require.False(t, inputs.Usage.UseHistoricalAverage)
}
