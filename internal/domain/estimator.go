package domain

// HistoricalEstimate is the empirical average cost per invocation of one entity.
// A nil Cost means there is no usable history; callers must not substitute zero.
type HistoricalEstimate struct {
	Cost  *float64 `json:"cost"`
	Count int64    `json:"count"`
}

// Available reports whether the estimate can stand in for the assumptions.
func (e HistoricalEstimate) Available() bool {
	return e.Cost != nil && e.Count > 0
}

// LookupHistoricalStat finds the observed aggregate for an entity.
// Text entities fall back to the "direct:" namespace when their own key has no history.
func LookupHistoricalStat(entity PriceableEntity, stats map[string]HistoricalStat) (HistoricalStat, bool) {
	stat, ok := stats[EntityID(entity.Source, entity.ModelID)]
	if (!ok || stat.RequestCount == 0) && entity.MediaType == MediaText {
		if direct, directOK := stats[EntityID(directStatsSource, entity.ModelID)]; directOK {
			stat, ok = direct, true
		}
	}

	if !ok || stat.RequestCount <= 0 {
		return HistoricalStat{}, false
	}
	return stat, true
}

// EstimateHistoricalCost derives the observed average cost per request of an entity.
func EstimateHistoricalCost(entity PriceableEntity, stats map[string]HistoricalStat) HistoricalEstimate {
	stat, ok := LookupHistoricalStat(entity, stats)
	if !ok {
		return HistoricalEstimate{}
	}

	cost, found := historicalCost(entity, stat)
	if !found {
		return HistoricalEstimate{}
	}

	return HistoricalEstimate{Cost: &cost, Count: stat.RequestCount}
}

func historicalCost(entity PriceableEntity, stat HistoricalStat) (float64, bool) {
	if entity.PriceKind == PricePerSecond && positive(stat.AvgDurationSeconds) {
		return *stat.AvgDurationSeconds * entity.BaseInputPrice, true
	}

	if entity.PriceKind == PricePer1KTokens {
		// Observed provider spend already reflects the blended token mix.
		if positive(stat.AvgProviderCostUSD) {
			return *stat.AvgProviderCostUSD, true
		}
		if stat.AvgTotalTokens == nil {
			return 0, false
		}
		if stat.AvgInputTokens != nil && stat.AvgOutputTokens != nil && entity.BaseOutputPrice != nil {
			outputPrice := *entity.BaseOutputPrice
			return *stat.AvgInputTokens/tokensToPerK*entity.BaseInputPrice +
				*stat.AvgOutputTokens/tokensToPerK*outputPrice, true
		}
		return *stat.AvgTotalTokens / tokensToPerK * entity.BaseInputPrice, true
	}

	if positive(stat.AvgProviderCostUSD) {
		return *stat.AvgProviderCostUSD, true
	}

	return 0, false
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
