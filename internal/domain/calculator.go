package domain

import (
	"context"
	"fmt"

	"github.com/davidbz/unitecon/internal/observability"
)

// Evaluation is the full derived view of one set of calculator inputs.
type Evaluation struct {
	Entity      PriceableEntity    `json:"entity"`
	PricingMode PricingMode        `json:"pricing_mode"`
	Historical  HistoricalEstimate `json:"historical"`
	Cost        CostResolution     `json:"cost"`
	Report      *MarginReport      `json:"report"`
	ReportError string             `json:"report_error,omitempty"`
}

// Evaluate runs the estimator, the cost cascade and the margin calculator for one entity.
// It is a pure function of its arguments; an undefined margin leaves Report nil and
// explains why in ReportError.
func Evaluate(
	entity PriceableEntity,
	usage UsageAssumptions,
	plan PlanAssumptions,
	stats map[string]HistoricalStat,
) Evaluation {
	estimate := EstimateHistoricalCost(entity, stats)
	cost := ResolveCost(entity, usage, estimate)

	evaluation := Evaluation{
		Entity:      entity,
		PricingMode: EffectivePricingMode(entity, usage.PricingMode),
		Historical:  estimate,
		Cost:        cost,
	}

	report, err := ComputeMargin(cost.CostPerRequest, plan)
	if err != nil {
		evaluation.ReportError = err.Error()
		return evaluation
	}
	evaluation.Report = report

	return evaluation
}

// CalculatorService evaluates inputs against the live catalog snapshot.
type CalculatorService struct {
	catalog CatalogStore
}

// NewCalculatorService creates a new calculator service (DI constructor).
func NewCalculatorService(catalog CatalogStore) *CalculatorService {
	return &CalculatorService{
		catalog: catalog,
	}
}

// Calculate evaluates inputs against the current catalog and statistics.
func (c *CalculatorService) Calculate(ctx context.Context, inputs CalculationInputs) (*Evaluation, error) {
	ctx = observability.WithEntity(ctx, inputs.EntityID)
	logger := observability.FromContext(ctx)

	if err := inputs.Validate(); err != nil {
		logger.Debug("calculation rejected", observability.Error(err))
		return nil, err
	}

	snapshot := c.catalog.Snapshot(ctx)

	entity, err := snapshot.Entity(inputs.EntityID)
	if err != nil {
		logger.Warn("calculation for unknown entity", observability.Error(err))
		return nil, err
	}

	evaluation := Evaluate(entity, inputs.Usage, inputs.Plan, snapshot.Stats)

	logger.Debug("calculation evaluated",
		observability.String("rule", string(evaluation.Cost.Rule)),
		observability.Float64("cost_per_request", evaluation.Cost.CostPerRequest),
		observability.Bool("report_defined", evaluation.Report != nil))

	return &evaluation, nil
}

// Entity finds an entity in the snapshot by ID.
func (s CatalogSnapshot) Entity(id string) (PriceableEntity, error) {
	for _, entity := range s.Entities {
		if entity.ID == id {
			return entity, nil
		}
	}
	return PriceableEntity{}, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
}

// ByMediaType returns the entities of the given media type in catalog order.
func (s CatalogSnapshot) ByMediaType(mediaType MediaType) []PriceableEntity {
	filtered := make([]PriceableEntity, 0, len(s.Entities))
	for _, entity := range s.Entities {
		if entity.MediaType == mediaType {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}
