package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
)

func defaultsConfig() *config.DefaultsConfig {
	return &config.DefaultsConfig{
		SubscriptionPrice:  990,
		Currency:           "RUB",
		USDExchangeRate:    95,
		CreditsInPlan:      3000,
		RequestsInPlan:     500,
		OverheadPercent:    15,
		AvgInputTokens:     500,
		AvgOutputTokens:    1000,
		AvgDurationSeconds: 5,
		PricingMode:        "base",
	}
}

func TestResolveInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Kling launch
entity_id: replicate:kling-v2
usage:
  avg_duration_seconds: 8
plan:
  currency: USD
  subscription_price: 12
`), 0o600))

	t.Run("defaults only", func(t *testing.T) {
		calcInputs, name, err := resolveInputs(defaultsConfig(), "openai:gpt-4o", "")
		require.NoError(t, err)
		require.Empty(t, name)
		require.Equal(t, "openai:gpt-4o", calcInputs.EntityID)
		require.Equal(t, domain.CurrencyRUB, calcInputs.Plan.Currency)
		require.Equal(t, 500, calcInputs.Plan.RequestsInPlan)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		calcInputs, name, err := resolveInputs(defaultsConfig(), "", path)
		require.NoError(t, err)
		require.Equal(t, "Kling launch", name)
		require.Equal(t, "replicate:kling-v2", calcInputs.EntityID)
		require.InDelta(t, 8.0, calcInputs.Usage.AvgDurationSeconds, 1e-12)
		require.Equal(t, 1000, calcInputs.Usage.AvgOutputTokens)
		require.Equal(t, domain.CurrencyUSD, calcInputs.Plan.Currency)
		require.InDelta(t, 12.0, calcInputs.Plan.SubscriptionPrice, 1e-12)
	})

	t.Run("entity flag wins over file", func(t *testing.T) {
		calcInputs, _, err := resolveInputs(defaultsConfig(), "fal:flux", path)
		require.NoError(t, err)
		require.Equal(t, "fal:flux", calcInputs.EntityID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := resolveInputs(defaultsConfig(), "", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
