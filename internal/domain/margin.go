package domain

import "fmt"

const percent = 100.0

// ValidatePlan checks that plan can be turned into a margin report.
// Quotas and the RUB exchange rate are divisors, so non-positive values leave the
// margin undefined rather than producing Inf or NaN.
func ValidatePlan(plan PlanAssumptions) error {
	if plan.RequestsInPlan <= 0 {
		return fmt.Errorf("%w: requests in plan must be positive", ErrMarginUndefined)
	}
	if plan.CreditsInPlan <= 0 {
		return fmt.Errorf("%w: credits in plan must be positive", ErrMarginUndefined)
	}

	switch plan.Currency {
	case CurrencyUSD:
	case CurrencyRUB:
		if plan.USDExchangeRate <= 0 {
			return fmt.Errorf("%w: USD exchange rate must be positive for RUB plans", ErrMarginUndefined)
		}
	default:
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidPlan, plan.Currency)
	}

	// Upper bounds on overhead are a presentation concern.
	if plan.OverheadPercent < 0 {
		return fmt.Errorf("%w: overhead percent cannot be negative", ErrInvalidPlan)
	}

	return nil
}

// PriceInUSD converts the subscription price to USD.
func PriceInUSD(plan PlanAssumptions) float64 {
	if plan.Currency == CurrencyUSD {
		return plan.SubscriptionPrice
	}
	return plan.SubscriptionPrice / plan.USDExchangeRate
}

// ComputeMargin builds the profitability report for a plan at the given cost per request.
// Negative profit is a valid report, not an error.
func ComputeMargin(costPerRequest float64, plan PlanAssumptions) (*MarginReport, error) {
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}

	priceInUSD := PriceInUSD(plan)
	requests := float64(plan.RequestsInPlan)
	credits := float64(plan.CreditsInPlan)

	pricePerRequest := priceInUSD / requests
	costWithOverhead := costPerRequest * (1 + plan.OverheadPercent/percent)
	profitPerRequest := pricePerRequest - costWithOverhead

	marginPercent := 0.0
	if pricePerRequest > 0 {
		marginPercent = profitPerRequest / pricePerRequest * percent
	}

	return &MarginReport{
		PriceInUSD:        priceInUSD,
		CreditsPerRequest: credits / requests,
		PricePerCredit:    priceInUSD / credits,
		PricePerRequest:   pricePerRequest,
		CostPerRequest:    costPerRequest,
		CostWithOverhead:  costWithOverhead,
		ProfitPerRequest:  profitPerRequest,
		MarginPercent:     marginPercent,
		TotalCost:         costWithOverhead * requests,
		TotalProfit:       profitPerRequest * requests,
	}, nil
}
