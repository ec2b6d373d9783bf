package domain

import "time"

// MediaType is the kind of output a priceable entity produces.
type MediaType string

// Media types.
const (
	MediaText  MediaType = "text"
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// PriceKind is the billing unit of an entity's base price.
type PriceKind string

// Price kinds.
const (
	PricePer1KTokens   PriceKind = "per_1k_tokens"
	PricePerSecond     PriceKind = "per_second"
	PricePerRequest    PriceKind = "per_request"
	PricePerGeneration PriceKind = "per_generation"
	PricePerImage      PriceKind = "per_image"
)

// PricingMode selects how a single price is picked from a variant-bearing entity.
type PricingMode string

// Pricing modes.
const (
	PricingModeBase    PricingMode = "base"
	PricingModeAverage PricingMode = "average"
	PricingModeVariant PricingMode = "variant"
)

// Currency of the subscription price.
type Currency string

// Supported currencies.
const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
)

// Variant is a named pricing sub-option of an entity (duration tier, quality tier).
type Variant struct {
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	PriceUSD        *float64 `json:"price_usd,omitempty"`
	PricePerSecond  *float64 `json:"price_per_second,omitempty"`
	DurationSeconds *float64 `json:"duration,omitempty"`
	Sound           *bool    `json:"sound,omitempty"`
	Mode            string   `json:"mode,omitempty"`
}

// PriceableEntity is a model/provider combination that can be invoked and billed.
type PriceableEntity struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	ModelID         string    `json:"model_id"`
	DisplayName     string    `json:"display_name"`
	MediaType       MediaType `json:"media_type"`
	PriceKind       PriceKind `json:"price_kind"`
	BaseInputPrice  float64   `json:"base_input_price"`
	BaseOutputPrice *float64  `json:"base_output_price,omitempty"` // per_1k_tokens only
	Variants        []Variant `json:"variants,omitempty"`
	Active          bool      `json:"active"`
}

// HasVariants reports whether the entity carries at least one pricing variant.
func (e PriceableEntity) HasVariants() bool {
	return len(e.Variants) > 0
}

// Variant returns the variant with the given key.
func (e PriceableEntity) Variant(key string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Key == key {
			return v, true
		}
	}
	return Variant{}, false
}

// HistoricalStat is an observed usage aggregate for one entity.
type HistoricalStat struct {
	RequestCount       int64    `json:"request_count"`
	AvgDurationSeconds *float64 `json:"avg_video_duration,omitempty"`
	AvgInputTokens     *float64 `json:"avg_tokens_input,omitempty"`
	AvgOutputTokens    *float64 `json:"avg_tokens_output,omitempty"`
	AvgTotalTokens     *float64 `json:"avg_tokens_total,omitempty"`
	AvgProviderCostUSD *float64 `json:"avg_provider_cost,omitempty"`
}

// UsageAssumptions are the operator's per-request usage inputs.
type UsageAssumptions struct {
	AvgInputTokens       int         `json:"avg_input_tokens"       yaml:"avg_input_tokens"`
	AvgOutputTokens      int         `json:"avg_output_tokens"      yaml:"avg_output_tokens"`
	AvgDurationSeconds   float64     `json:"avg_duration_seconds"   yaml:"avg_duration_seconds"`
	PricingMode          PricingMode `json:"pricing_mode"           yaml:"pricing_mode"`
	SelectedVariantKey   string      `json:"selected_variant_key"   yaml:"selected_variant_key"`
	UseHistoricalAverage bool        `json:"use_historical_average" yaml:"use_historical_average"`
}

// PlanAssumptions describe the subscription plan being priced.
type PlanAssumptions struct {
	SubscriptionPrice float64  `json:"subscription_price" yaml:"subscription_price"`
	Currency          Currency `json:"currency"           yaml:"currency"`
	USDExchangeRate   float64  `json:"usd_exchange_rate"  yaml:"usd_exchange_rate"` // RUB per USD
	CreditsInPlan     int      `json:"credits_in_plan"    yaml:"credits_in_plan"`
	RequestsInPlan    int      `json:"requests_in_plan"   yaml:"requests_in_plan"`
	OverheadPercent   float64  `json:"overhead_percent"   yaml:"overhead_percent"`
}

// CalculationInputs is everything the operator enters for one calculation.
type CalculationInputs struct {
	EntityID string           `json:"entity_id" yaml:"entity_id"`
	Usage    UsageAssumptions `json:"usage"     yaml:"usage"`
	Plan     PlanAssumptions  `json:"plan"      yaml:"plan"`
}

// MarginReport is the profitability projection for one plan. All money is USD.
type MarginReport struct {
	PriceInUSD        float64 `json:"price_in_usd"`
	CreditsPerRequest float64 `json:"credits_per_request"`
	PricePerCredit    float64 `json:"price_per_credit"`
	PricePerRequest   float64 `json:"price_per_request"`
	CostPerRequest    float64 `json:"cost_per_request"`
	CostWithOverhead  float64 `json:"cost_with_overhead"`
	ProfitPerRequest  float64 `json:"profit_per_request"`
	MarginPercent     float64 `json:"margin_percent"`
	TotalCost         float64 `json:"total_cost"`
	TotalProfit       float64 `json:"total_profit"`
}

// IsLoss reports whether the plan loses money on each request.
func (r MarginReport) IsLoss() bool {
	return r.ProfitPerRequest < 0
}

// ScenarioUsage is the persisted subset of UsageAssumptions.
// Saved scenarios never replay the historical-average override.
type ScenarioUsage struct {
	AvgInputTokens     int         `json:"avg_input_tokens"`
	AvgOutputTokens    int         `json:"avg_output_tokens"`
	AvgDurationSeconds float64     `json:"avg_duration_seconds"`
	PricingMode        PricingMode `json:"pricing_mode"`
	SelectedVariantKey string      `json:"selected_variant_key"`
}

// NewScenarioUsage drops the session-only fields from usage.
func NewScenarioUsage(usage UsageAssumptions) ScenarioUsage {
	return ScenarioUsage{
		AvgInputTokens:     usage.AvgInputTokens,
		AvgOutputTokens:    usage.AvgOutputTokens,
		AvgDurationSeconds: usage.AvgDurationSeconds,
		PricingMode:        usage.PricingMode,
		SelectedVariantKey: usage.SelectedVariantKey,
	}
}

// Assumptions expands the stored usage back into live assumptions.
func (u ScenarioUsage) Assumptions() UsageAssumptions {
	return UsageAssumptions{
		AvgInputTokens:       u.AvgInputTokens,
		AvgOutputTokens:      u.AvgOutputTokens,
		AvgDurationSeconds:   u.AvgDurationSeconds,
		PricingMode:          u.PricingMode,
		SelectedVariantKey:   u.SelectedVariantKey,
		UseHistoricalAverage: false,
	}
}

// SavedScenario is a named, immutable set of calculator inputs.
type SavedScenario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	EntityID  string          `json:"entity_id"`
	Plan      PlanAssumptions `json:"plan"`
	Usage     ScenarioUsage   `json:"usage"`
	CreatedAt time.Time       `json:"created_at"`
}

// Inputs returns the scenario as live calculator inputs.
func (s SavedScenario) Inputs() CalculationInputs {
	return CalculationInputs{
		EntityID: s.EntityID,
		Usage:    s.Usage.Assumptions(),
		Plan:     s.Plan,
	}
}

// CatalogSnapshot is one committed fetch generation of catalog and statistics.
type CatalogSnapshot struct {
	Generation uint64                    `json:"generation"`
	Loaded     bool                      `json:"loaded"`
	FetchedAt  time.Time                 `json:"fetched_at"`
	Entities   []PriceableEntity         `json:"entities"`
	Stats      map[string]HistoricalStat `json:"-"`
	Error      string                    `json:"error,omitempty"`
}
