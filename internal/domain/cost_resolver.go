package domain

const tokensToPerK = 1000.0

// CostRule names the step of the resolution cascade that produced a cost.
type CostRule string

// Cost rules, in cascade priority order.
const (
	CostRuleHistorical      CostRule = "historical"
	CostRuleTokens          CostRule = "tokens"
	CostRuleVariantAverage  CostRule = "variant_average"
	CostRuleVariantSelected CostRule = "variant_selected"
	CostRulePerSecond       CostRule = "per_second"
	CostRuleBase            CostRule = "base"
)

// CostResolution is the effective cost per request and how it was derived.
type CostResolution struct {
	CostPerRequest   float64  `json:"cost_per_request"`
	Rule             CostRule `json:"rule"`
	VariantKey       string   `json:"variant_key,omitempty"`
	VariantsAveraged int      `json:"variants_averaged,omitempty"`
	// FellBackToBase is set when a variant rule matched but yielded no price.
	FellBackToBase bool `json:"fell_back_to_base,omitempty"`
}

// EffectivePricingMode returns the mode that applies to entity.
// Entities without variants always price in base mode.
func EffectivePricingMode(entity PriceableEntity, mode PricingMode) PricingMode {
	if !entity.HasVariants() {
		return PricingModeBase
	}
	switch mode {
	case PricingModeAverage, PricingModeVariant:
		return mode
	default:
		return PricingModeBase
	}
}

// VariantCost returns the per-request cost of one variant, or 0 when it has no usable price.
// A variant without a declared duration is billed for avgDurationSeconds.
func VariantCost(v Variant, avgDurationSeconds float64) float64 {
	if positive(v.PriceUSD) {
		return *v.PriceUSD
	}
	if positive(v.PricePerSecond) {
		duration := avgDurationSeconds
		if positive(v.DurationSeconds) {
			duration = *v.DurationSeconds
		}
		if cost := *v.PricePerSecond * duration; cost > 0 {
			return cost
		}
	}
	return 0
}

// ResolveCost picks the effective cost per request for entity.
// Exactly one rule of the cascade applies; the first match wins.
func ResolveCost(entity PriceableEntity, usage UsageAssumptions, estimate HistoricalEstimate) CostResolution {
	if usage.UseHistoricalAverage && estimate.Available() {
		return CostResolution{CostPerRequest: *estimate.Cost, Rule: CostRuleHistorical}
	}

	if entity.PriceKind == PricePer1KTokens {
		return CostResolution{CostPerRequest: tokenCost(entity, usage), Rule: CostRuleTokens}
	}

	switch EffectivePricingMode(entity, usage.PricingMode) {
	case PricingModeAverage:
		return averageVariantCost(entity, usage.AvgDurationSeconds)
	case PricingModeVariant:
		if v, ok := entity.Variant(usage.SelectedVariantKey); ok {
			resolution := CostResolution{Rule: CostRuleVariantSelected, VariantKey: v.Key}
			if cost := VariantCost(v, usage.AvgDurationSeconds); cost > 0 {
				resolution.CostPerRequest = cost
			} else {
				resolution.CostPerRequest = entity.BaseInputPrice
				resolution.FellBackToBase = true
			}
			return resolution
		}
	case PricingModeBase:
	}

	if entity.PriceKind == PricePerSecond {
		return CostResolution{
			CostPerRequest: entity.BaseInputPrice * usage.AvgDurationSeconds,
			Rule:           CostRulePerSecond,
		}
	}

	return CostResolution{CostPerRequest: entity.BaseInputPrice, Rule: CostRuleBase}
}

func tokenCost(entity PriceableEntity, usage UsageAssumptions) float64 {
	outputPrice := 0.0
	if entity.BaseOutputPrice != nil {
		outputPrice = *entity.BaseOutputPrice
	}

	inputCost := float64(usage.AvgInputTokens) / tokensToPerK * entity.BaseInputPrice
	outputCost := float64(usage.AvgOutputTokens) / tokensToPerK * outputPrice
	return inputCost + outputCost
}

func averageVariantCost(entity PriceableEntity, avgDurationSeconds float64) CostResolution {
	var (
		sum   float64
		count int
	)
	for _, v := range entity.Variants {
		if cost := VariantCost(v, avgDurationSeconds); cost > 0 {
			sum += cost
			count++
		}
	}

	if count == 0 {
		return CostResolution{
			CostPerRequest: entity.BaseInputPrice,
			Rule:           CostRuleVariantAverage,
			FellBackToBase: true,
		}
	}

	return CostResolution{
		CostPerRequest:   sum / float64(count),
		Rule:             CostRuleVariantAverage,
		VariantsAveraged: count,
	}
}
