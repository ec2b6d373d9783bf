package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/unitecon/internal/observability"
)

// Scenario events.
const (
	EventScenarioSaved   = "scenario.saved"
	EventScenarioDeleted = "scenario.deleted"
)

// ScenarioComparison is one saved scenario recomputed against live data.
type ScenarioComparison struct {
	Scenario   SavedScenario `json:"scenario"`
	Evaluation *Evaluation   `json:"evaluation,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// ScenarioService manages saved what-if scenarios.
type ScenarioService struct {
	// mu serializes read-modify-write cycles; the repository stores the list wholesale.
	mu         sync.Mutex
	repository ScenarioRepository
	catalog    CatalogStore
	events     EventPublisher
	now        func() time.Time
	newID      func() string
}

// NewScenarioService creates a new scenario service (DI constructor).
func NewScenarioService(
	repository ScenarioRepository,
	catalog CatalogStore,
	events EventPublisher,
) *ScenarioService {
	return &ScenarioService{
		mu:         sync.Mutex{},
		repository: repository,
		catalog:    catalog,
		events:     events,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// WithClock overrides the timestamp source. Used by tests.
func (s *ScenarioService) WithClock(now func() time.Time) *ScenarioService {
	s.now = now
	return s
}

// Save appends a new scenario built from inputs. Scenarios are never updated in place.
func (s *ScenarioService) Save(ctx context.Context, name string, inputs CalculationInputs) (SavedScenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SavedScenario{}, ErrEmptyScenarioName
	}
	if err := inputs.Validate(); err != nil {
		return SavedScenario{}, err
	}

	scenario := SavedScenario{
		ID:        s.newID(),
		Name:      name,
		EntityID:  inputs.EntityID,
		Plan:      inputs.Plan,
		Usage:     NewScenarioUsage(inputs.Usage),
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scenarios, err := s.repository.LoadAll(ctx)
	if err != nil {
		return SavedScenario{}, fmt.Errorf("failed to load scenarios: %w", err)
	}

	if err := s.repository.SaveAll(ctx, append(scenarios, scenario)); err != nil {
		return SavedScenario{}, fmt.Errorf("failed to save scenarios: %w", err)
	}

	ctx = observability.WithScenario(ctx, scenario.ID)
	s.publish(ctx, EventScenarioSaved, map[string]interface{}{
		"name":      scenario.Name,
		"entity_id": scenario.EntityID,
	})

	return scenario, nil
}

// Delete removes the scenario with the given ID.
func (s *ScenarioService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenarios, err := s.repository.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	idx := slices.IndexFunc(scenarios, func(sc SavedScenario) bool { return sc.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}

	remaining := slices.Delete(slices.Clone(scenarios), idx, idx+1)
	if err := s.repository.SaveAll(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save scenarios: %w", err)
	}

	s.publish(observability.WithScenario(ctx, id), EventScenarioDeleted, map[string]interface{}{
		"name": scenarios[idx].Name,
	})

	return nil
}

// Get returns the saved scenario with the given ID.
func (s *ScenarioService) Get(ctx context.Context, id string) (SavedScenario, error) {
	scenarios, err := s.List(ctx)
	if err != nil {
		return SavedScenario{}, err
	}

	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, nil
		}
	}
	return SavedScenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
}

// Load returns a scenario's inputs for the caller to adopt as its live state.
// It does not evaluate anything.
func (s *ScenarioService) Load(ctx context.Context, id string) (CalculationInputs, error) {
	scenario, err := s.Get(ctx, id)
	if err != nil {
		return CalculationInputs{}, err
	}
	return scenario.Inputs(), nil
}

// List returns all scenarios in insertion order.
func (s *ScenarioService) List(ctx context.Context) ([]SavedScenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenarios, err := s.repository.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	return scenarios, nil
}

// Compare recomputes every saved scenario against the current catalog and statistics.
// Pricing or history drift since a scenario was saved shows up in its numbers.
func (s *ScenarioService) Compare(ctx context.Context) ([]ScenarioComparison, error) {
	scenarios, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := s.catalog.Snapshot(ctx)

	comparisons := make([]ScenarioComparison, 0, len(scenarios))
	for _, scenario := range scenarios {
		comparison := ScenarioComparison{Scenario: scenario}

		entity, entityErr := snapshot.Entity(scenario.EntityID)
		if entityErr != nil {
			comparison.Error = entityErr.Error()
			comparisons = append(comparisons, comparison)
			continue
		}

		inputs := scenario.Inputs()
		evaluation := Evaluate(entity, inputs.Usage, inputs.Plan, snapshot.Stats)
		comparison.Evaluation = &evaluation
		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}

func (s *ScenarioService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, eventType, data)
}
