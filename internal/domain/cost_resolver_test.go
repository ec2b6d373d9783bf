package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/domain"
)

func variantEntity() domain.PriceableEntity {
	return domain.PriceableEntity{
		ID:             "replicate:veo-3",
		Source:         "replicate",
		ModelID:        "veo-3",
		DisplayName:    "veo-3",
		MediaType:      domain.MediaVideo,
		PriceKind:      domain.PricePerSecond,
		BaseInputPrice: 0.5,
		Variants: []domain.Variant{
			{Key: "A", Label: "A", PriceUSD: ptr(0.04)},
			{Key: "B", Label: "B", PriceUSD: ptr(0.05)},
			{Key: "C", Label: "C", PricePerSecond: ptr(0.06), DurationSeconds: ptr(3.0)},
		},
	}
}

func TestResolveCost_Tokens(t *testing.T) {
	tests := []struct {
		name        string
		inputPrice  float64
		outputPrice *float64
		usage       domain.UsageAssumptions
	}{
		{
			name:        "input and output prices",
			inputPrice:  0.002,
			outputPrice: ptr(0.006),
			usage:       domain.UsageAssumptions{AvgInputTokens: 500, AvgOutputTokens: 1000},
		},
		{
			name:       "absent output price counts as zero",
			inputPrice: 0.01,
			usage:      domain.UsageAssumptions{AvgInputTokens: 250, AvgOutputTokens: 4000},
		},
		{
			name:        "zero tokens",
			inputPrice:  0.002,
			outputPrice: ptr(0.006),
		},
		{
			name:        "pricing mode is ignored for token entities",
			inputPrice:  0.002,
			outputPrice: ptr(0.006),
			usage: domain.UsageAssumptions{
				AvgInputTokens: 1000, AvgOutputTokens: 1000, PricingMode: domain.PricingModeAverage,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity := domain.PriceableEntity{
				ID:              "x:y",
				MediaType:       domain.MediaText,
				PriceKind:       domain.PricePer1KTokens,
				BaseInputPrice:  tt.inputPrice,
				BaseOutputPrice: tt.outputPrice,
			}

			outputPrice := 0.0
			if tt.outputPrice != nil {
				outputPrice = *tt.outputPrice
			}
			inTok := float64(tt.usage.AvgInputTokens)
			outTok := float64(tt.usage.AvgOutputTokens)
			expected := (inTok/1000)*tt.inputPrice + (outTok/1000)*outputPrice

			resolution := domain.ResolveCost(entity, tt.usage, domain.HistoricalEstimate{})

			require.Equal(t, domain.CostRuleTokens, resolution.Rule)
			require.Equal(t, expected, resolution.CostPerRequest) //nolint:testifylint // formula must match exactly
		})
	}
}

func TestResolveCost_PerSecondForcedToBase(t *testing.T) {
	// Scenario B: no variants, so any requested mode collapses to base.
	for _, mode := range []domain.PricingMode{domain.PricingModeBase, domain.PricingModeAverage, domain.PricingModeVariant, ""} {
		t.Run(string(mode), func(t *testing.T) {
			resolution := domain.ResolveCost(secondEntity(0.056), domain.UsageAssumptions{
				AvgDurationSeconds: 5,
				PricingMode:        mode,
				SelectedVariantKey: "missing",
			}, domain.HistoricalEstimate{})

			require.Equal(t, domain.CostRulePerSecond, resolution.Rule)
			require.InDelta(t, 0.28, resolution.CostPerRequest, 1e-12)
			require.Equal(t, domain.PricingModeBase, domain.EffectivePricingMode(secondEntity(0.056), mode))
		})
	}
}

func TestResolveCost_Variants(t *testing.T) {
	t.Run("average of positive variant costs", func(t *testing.T) {
		// Scenario C: mean of (0.04, 0.05, 0.06*3).
		resolution := domain.ResolveCost(variantEntity(), domain.UsageAssumptions{
			PricingMode:        domain.PricingModeAverage,
			AvgDurationSeconds: 10,
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRuleVariantAverage, resolution.Rule)
		require.Equal(t, 3, resolution.VariantsAveraged)
		require.False(t, resolution.FellBackToBase)
		require.InDelta(t, 0.09, resolution.CostPerRequest, 1e-12)
	})

	t.Run("average skips unpriced variants", func(t *testing.T) {
		entity := variantEntity()
		entity.Variants = append(entity.Variants,
			domain.Variant{Key: "free", PriceUSD: ptr(0.0)},
			domain.Variant{Key: "empty"},
		)

		resolution := domain.ResolveCost(entity, domain.UsageAssumptions{
			PricingMode: domain.PricingModeAverage,
		}, domain.HistoricalEstimate{})

		require.Equal(t, 3, resolution.VariantsAveraged)
		require.InDelta(t, 0.09, resolution.CostPerRequest, 1e-12)
	})

	t.Run("average uses assumed duration for rate-only variants", func(t *testing.T) {
		entity := variantEntity()
		entity.Variants = []domain.Variant{
			{Key: "rate", PricePerSecond: ptr(0.1)},
			{Key: "fixed", PriceUSD: ptr(1.0)},
		}

		resolution := domain.ResolveCost(entity, domain.UsageAssumptions{
			PricingMode:        domain.PricingModeAverage,
			AvgDurationSeconds: 4,
		}, domain.HistoricalEstimate{})

		require.InDelta(t, (0.4+1.0)/2, resolution.CostPerRequest, 1e-12)
	})

	t.Run("average with no priced variants falls back to base", func(t *testing.T) {
		entity := variantEntity()
		entity.Variants = []domain.Variant{{Key: "a"}, {Key: "b", PricePerSecond: ptr(0.2)}}

		resolution := domain.ResolveCost(entity, domain.UsageAssumptions{
			PricingMode:        domain.PricingModeAverage,
			AvgDurationSeconds: 0,
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRuleVariantAverage, resolution.Rule)
		require.True(t, resolution.FellBackToBase)
		require.InDelta(t, 0.5, resolution.CostPerRequest, 1e-12)
	})

	t.Run("selected variant", func(t *testing.T) {
		resolution := domain.ResolveCost(variantEntity(), domain.UsageAssumptions{
			PricingMode:        domain.PricingModeVariant,
			SelectedVariantKey: "C",
			AvgDurationSeconds: 10,
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRuleVariantSelected, resolution.Rule)
		require.Equal(t, "C", resolution.VariantKey)
		require.InDelta(t, 0.18, resolution.CostPerRequest, 1e-12)
	})

	t.Run("selected variant without price falls back to base", func(t *testing.T) {
		entity := variantEntity()
		entity.Variants = append(entity.Variants, domain.Variant{Key: "D"})

		resolution := domain.ResolveCost(entity, domain.UsageAssumptions{
			PricingMode:        domain.PricingModeVariant,
			SelectedVariantKey: "D",
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRuleVariantSelected, resolution.Rule)
		require.True(t, resolution.FellBackToBase)
		require.InDelta(t, 0.5, resolution.CostPerRequest, 1e-12)
	})

	t.Run("unknown selected variant falls through to per second", func(t *testing.T) {
		resolution := domain.ResolveCost(variantEntity(), domain.UsageAssumptions{
			PricingMode:        domain.PricingModeVariant,
			SelectedVariantKey: "nope",
			AvgDurationSeconds: 2,
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRulePerSecond, resolution.Rule)
		require.InDelta(t, 1.0, resolution.CostPerRequest, 1e-12)
	})

	t.Run("base mode ignores variants", func(t *testing.T) {
		entity := variantEntity()
		entity.PriceKind = domain.PricePerGeneration

		resolution := domain.ResolveCost(entity, domain.UsageAssumptions{
			PricingMode:        domain.PricingModeBase,
			AvgDurationSeconds: 2,
		}, domain.HistoricalEstimate{})

		require.Equal(t, domain.CostRuleBase, resolution.Rule)
		require.InDelta(t, 0.5, resolution.CostPerRequest, 1e-12)
	})
}

func TestResolveCost_Historical(t *testing.T) {
	usage := domain.UsageAssumptions{AvgInputTokens: 500, AvgOutputTokens: 1000, UseHistoricalAverage: true}

	t.Run("available estimate overrides assumptions", func(t *testing.T) {
		resolution := domain.ResolveCost(tokenEntity(0.002, 0.006), usage, domain.HistoricalEstimate{
			Cost:  ptr(0.0123),
			Count: 10,
		})

		require.Equal(t, domain.CostRuleHistorical, resolution.Rule)
		require.InDelta(t, 0.0123, resolution.CostPerRequest, 1e-12)
	})

	t.Run("estimate without requests is ignored", func(t *testing.T) {
		resolution := domain.ResolveCost(tokenEntity(0.002, 0.006), usage, domain.HistoricalEstimate{
			Cost:  ptr(0.0123),
			Count: 0,
		})

		require.Equal(t, domain.CostRuleTokens, resolution.Rule)
		require.InDelta(t, 0.007, resolution.CostPerRequest, 1e-12)
	})

	t.Run("zero request stats never reach the override", func(t *testing.T) {
		stats := map[string]domain.HistoricalStat{
			"openai:gpt-4o": {
				RequestCount:       0,
				AvgProviderCostUSD: ptr(1.0),
				AvgInputTokens:     ptr(1.0),
				AvgOutputTokens:    ptr(1.0),
				AvgTotalTokens:     ptr(2.0),
			},
		}
		entity := tokenEntity(0.002, 0.006)

		resolution := domain.ResolveCost(entity, usage, domain.EstimateHistoricalCost(entity, stats))

		require.Equal(t, domain.CostRuleTokens, resolution.Rule)
	})

	t.Run("flag off ignores estimate", func(t *testing.T) {
		off := usage
		off.UseHistoricalAverage = false

		resolution := domain.ResolveCost(tokenEntity(0.002, 0.006), off, domain.HistoricalEstimate{
			Cost:  ptr(0.0123),
			Count: 10,
		})

		require.Equal(t, domain.CostRuleTokens, resolution.Rule)
	})
}

func TestVariantCost(t *testing.T) {
	require.InDelta(t, 0.04, domain.VariantCost(domain.Variant{PriceUSD: ptr(0.04), PricePerSecond: ptr(9.0)}, 5), 1e-12)
	require.InDelta(t, 0.3, domain.VariantCost(domain.Variant{PriceUSD: ptr(0.0), PricePerSecond: ptr(0.1), DurationSeconds: ptr(3.0)}, 5), 1e-12)
	require.InDelta(t, 0.5, domain.VariantCost(domain.Variant{PricePerSecond: ptr(0.1)}, 5), 1e-12)
	require.Zero(t, domain.VariantCost(domain.Variant{PricePerSecond: ptr(0.1)}, 0))
	require.Zero(t, domain.VariantCost(domain.Variant{}, 5))
}
