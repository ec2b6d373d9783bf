package inputs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/unitecon/internal/domain"
)

// ErrInvalidInputs indicates a value outside its allowed set.
var ErrInvalidInputs = domain.ErrInvalidInputs

// File is a calculator input file. Every field is optional and overrides a default.
//
//	name: Basic plan
//	entity_id: openai:gpt-4o
//	usage:
//	  avg_input_tokens: 500
//	  pricing_mode: base
//	plan:
//	  subscription_price: 990
//	  currency: RUB
type File struct {
	Name     string       `yaml:"name"`
	EntityID *string      `yaml:"entity_id"`
	Usage    UsageOverlay `yaml:"usage"`
	Plan     PlanOverlay  `yaml:"plan"`
}

// UsageOverlay holds optional usage assumption overrides.
type UsageOverlay struct {
	AvgInputTokens       *int     `yaml:"avg_input_tokens"`
	AvgOutputTokens      *int     `yaml:"avg_output_tokens"`
	AvgDurationSeconds   *float64 `yaml:"avg_duration_seconds"`
	PricingMode          *string  `yaml:"pricing_mode"`
	SelectedVariantKey   *string  `yaml:"selected_variant_key"`
	UseHistoricalAverage *bool    `yaml:"use_historical_average"`
}

// PlanOverlay holds optional plan assumption overrides.
type PlanOverlay struct {
	SubscriptionPrice *float64 `yaml:"subscription_price"`
	Currency          *string  `yaml:"currency"`
	USDExchangeRate   *float64 `yaml:"usd_exchange_rate"`
	CreditsInPlan     *int     `yaml:"credits_in_plan"`
	RequestsInPlan    *int     `yaml:"requests_in_plan"`
	OverheadPercent   *float64 `yaml:"overhead_percent"`
}

// Load reads and parses an input file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes and validates input file contents.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse inputs: %w", err)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Apply overlays the file onto base and returns the result.
func (f *File) Apply(base domain.CalculationInputs) domain.CalculationInputs {
	out := base

	setIf(&out.EntityID, f.EntityID)

	setIf(&out.Usage.AvgInputTokens, f.Usage.AvgInputTokens)
	setIf(&out.Usage.AvgOutputTokens, f.Usage.AvgOutputTokens)
	setIf(&out.Usage.AvgDurationSeconds, f.Usage.AvgDurationSeconds)
	setIf(&out.Usage.SelectedVariantKey, f.Usage.SelectedVariantKey)
	setIf(&out.Usage.UseHistoricalAverage, f.Usage.UseHistoricalAverage)
	if f.Usage.PricingMode != nil {
		out.Usage.PricingMode = domain.PricingMode(*f.Usage.PricingMode)
	}

	setIf(&out.Plan.SubscriptionPrice, f.Plan.SubscriptionPrice)
	setIf(&out.Plan.USDExchangeRate, f.Plan.USDExchangeRate)
	setIf(&out.Plan.CreditsInPlan, f.Plan.CreditsInPlan)
	setIf(&out.Plan.RequestsInPlan, f.Plan.RequestsInPlan)
	setIf(&out.Plan.OverheadPercent, f.Plan.OverheadPercent)
	if f.Plan.Currency != nil {
		out.Plan.Currency = domain.Currency(*f.Plan.Currency)
	}

	return out
}

// validate checks the file's own values over a neutral base, so a file
// cannot name a pricing mode or currency the calculator would reject.
func (f *File) validate() error {
	neutral := domain.CalculationInputs{
		Usage: domain.UsageAssumptions{PricingMode: domain.PricingModeBase},
		Plan:  domain.PlanAssumptions{Currency: domain.CurrencyRUB},
	}
	return f.Apply(neutral).Validate()
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
