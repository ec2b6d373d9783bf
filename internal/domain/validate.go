package domain

import "fmt"

// Validate rejects inputs outside their allowed values. Zero quotas are valid
// input; they only make the margin undefined.
func (i CalculationInputs) Validate() error {
	if err := i.Usage.Validate(); err != nil {
		return err
	}
	return i.Plan.Validate()
}

// Validate checks the usage assumptions. An empty pricing mode means base.
func (u UsageAssumptions) Validate() error {
	switch u.PricingMode {
	case "", PricingModeBase, PricingModeAverage:
	case PricingModeVariant:
		if u.SelectedVariantKey == "" {
			return fmt.Errorf("%w: pricing_mode variant needs selected_variant_key", ErrInvalidInputs)
		}
	default:
		return fmt.Errorf("%w: pricing_mode %q", ErrInvalidInputs, u.PricingMode)
	}

	switch {
	case u.AvgInputTokens < 0:
		return fmt.Errorf("%w: avg_input_tokens cannot be negative", ErrInvalidInputs)
	case u.AvgOutputTokens < 0:
		return fmt.Errorf("%w: avg_output_tokens cannot be negative", ErrInvalidInputs)
	case u.AvgDurationSeconds < 0:
		return fmt.Errorf("%w: avg_duration_seconds cannot be negative", ErrInvalidInputs)
	}
	return nil
}

// Validate checks the plan assumptions.
func (p PlanAssumptions) Validate() error {
	switch p.Currency {
	case CurrencyRUB, CurrencyUSD:
	default:
		return fmt.Errorf("%w: %w: currency %q", ErrInvalidInputs, ErrInvalidPlan, p.Currency)
	}

	switch {
	case p.SubscriptionPrice < 0:
		return fmt.Errorf("%w: %w: subscription_price cannot be negative", ErrInvalidInputs, ErrInvalidPlan)
	case p.OverheadPercent < 0:
		return fmt.Errorf("%w: %w: overhead_percent cannot be negative", ErrInvalidInputs, ErrInvalidPlan)
	}
	return nil
}
