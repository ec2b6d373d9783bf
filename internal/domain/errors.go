package domain

import "errors"

var (
	// ErrEntityNotFound indicates the entity is not in the current catalog snapshot.
	ErrEntityNotFound = errors.New("entity not found in catalog")

	// ErrEmptyScenarioName rejects a scenario save without a name.
	ErrEmptyScenarioName = errors.New("scenario name cannot be empty")

	// ErrScenarioNotFound indicates no saved scenario has the requested ID.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrMarginUndefined indicates the plan cannot produce a report (zero quotas, missing rate).
	ErrMarginUndefined = errors.New("margin cannot be computed")

	// ErrInvalidInputs rejects calculator inputs outside their allowed values.
	ErrInvalidInputs = errors.New("invalid calculator inputs")

	// ErrInvalidPlan indicates plan assumptions outside their domain.
	ErrInvalidPlan = errors.New("invalid plan assumptions")
)
