package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/domain"
)

func tokenEntity(input, output float64) domain.PriceableEntity {
	return domain.PriceableEntity{
		ID:              "openai:gpt-4o",
		Source:          "openai",
		ModelID:         "gpt-4o",
		DisplayName:     "GPT-4o",
		MediaType:       domain.MediaText,
		PriceKind:       domain.PricePer1KTokens,
		BaseInputPrice:  input,
		BaseOutputPrice: ptr(output),
	}
}

func secondEntity(price float64) domain.PriceableEntity {
	return domain.PriceableEntity{
		ID:             "replicate:kling-v2",
		Source:         "replicate",
		ModelID:        "kling-v2",
		DisplayName:    "kling-v2",
		MediaType:      domain.MediaVideo,
		PriceKind:      domain.PricePerSecond,
		BaseInputPrice: price,
	}
}

func TestEstimateHistoricalCost(t *testing.T) {
	tests := []struct {
		name          string
		entity        domain.PriceableEntity
		stats         map[string]domain.HistoricalStat
		expectedCost  *float64
		expectedCount int64
	}{
		{
			name:   "no stats means no data",
			entity: tokenEntity(0.002, 0.006),
			stats:  map[string]domain.HistoricalStat{},
		},
		{
			name:   "zero request count is never a valid source",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {
					RequestCount:       0,
					AvgProviderCostUSD: ptr(0.5),
					AvgTotalTokens:     ptr(1000.0),
				},
			},
		},
		{
			name:   "per second uses average duration",
			entity: secondEntity(0.056),
			stats: map[string]domain.HistoricalStat{
				"replicate:kling-v2": {RequestCount: 12, AvgDurationSeconds: ptr(5.0), AvgProviderCostUSD: ptr(9.0)},
			},
			expectedCost:  ptr(0.28),
			expectedCount: 12,
		},
		{
			name:   "per second without duration falls back to provider cost",
			entity: secondEntity(0.056),
			stats: map[string]domain.HistoricalStat{
				"replicate:kling-v2": {RequestCount: 3, AvgDurationSeconds: ptr(0.0), AvgProviderCostUSD: ptr(0.31)},
			},
			expectedCost:  ptr(0.31),
			expectedCount: 3,
		},
		{
			name:   "tokens prefer provider cost",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {
					RequestCount:       40,
					AvgProviderCostUSD: ptr(0.0123),
					AvgInputTokens:     ptr(500.0),
					AvgOutputTokens:    ptr(1000.0),
					AvgTotalTokens:     ptr(1500.0),
				},
			},
			expectedCost:  ptr(0.0123),
			expectedCount: 40,
		},
		{
			name:   "tokens split input and output",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {
					RequestCount:    40,
					AvgInputTokens:  ptr(500.0),
					AvgOutputTokens: ptr(1000.0),
					AvgTotalTokens:  ptr(1500.0),
				},
			},
			expectedCost:  ptr(0.007),
			expectedCount: 40,
		},
		{
			name:   "tokens approximate from total",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {RequestCount: 2, AvgTotalTokens: ptr(1500.0)},
			},
			expectedCost:  ptr(0.003),
			expectedCount: 2,
		},
		{
			name:   "tokens without totals have no data",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {RequestCount: 2, AvgInputTokens: ptr(10.0)},
			},
		},
		{
			name:   "text falls back to direct namespace",
			entity: tokenEntity(0.002, 0.006),
			stats: map[string]domain.HistoricalStat{
				"openai:gpt-4o": {RequestCount: 0},
				"direct:gpt-4o": {RequestCount: 7, AvgProviderCostUSD: ptr(0.02)},
			},
			expectedCost:  ptr(0.02),
			expectedCount: 7,
		},
		{
			name: "non-text never uses direct namespace",
			entity: domain.PriceableEntity{
				ID: "fal:flux", Source: "fal", ModelID: "flux",
				MediaType: domain.MediaImage, PriceKind: domain.PricePerImage, BaseInputPrice: 0.003,
			},
			stats: map[string]domain.HistoricalStat{
				"direct:flux": {RequestCount: 7, AvgProviderCostUSD: ptr(0.02)},
			},
		},
		{
			name: "flat price uses provider cost",
			entity: domain.PriceableEntity{
				ID: "fal:flux", Source: "fal", ModelID: "flux",
				MediaType: domain.MediaImage, PriceKind: domain.PricePerImage, BaseInputPrice: 0.003,
			},
			stats: map[string]domain.HistoricalStat{
				"fal:flux": {RequestCount: 9, AvgProviderCostUSD: ptr(0.0035)},
			},
			expectedCost:  ptr(0.0035),
			expectedCount: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := domain.EstimateHistoricalCost(tt.entity, tt.stats)

			if tt.expectedCost == nil {
				require.Nil(t, estimate.Cost)
				require.Zero(t, estimate.Count)
				require.False(t, estimate.Available())
				return
			}

			require.True(t, estimate.Available())
			require.InDelta(t, *tt.expectedCost, *estimate.Cost, 1e-12)
			require.Equal(t, tt.expectedCount, estimate.Count)
		})
	}
}
