package domain

import "context"

// CatalogSource fetches the raw pricing catalog and usage statistics from the backend.
type CatalogSource interface {
	// FetchAdapters returns the adapter catalog with token-priced models.
	FetchAdapters(ctx context.Context) ([]AdapterRecord, error)

	// FetchProviderPrices returns the per-unit provider price list.
	FetchProviderPrices(ctx context.Context) ([]ProviderPriceRecord, error)

	// FetchStats returns observed usage aggregates keyed by "source:model".
	FetchStats(ctx context.Context) (map[string]HistoricalStat, error)
}

// CatalogStore holds the committed catalog snapshot.
type CatalogStore interface {
	// Commit replaces the current snapshot.
	Commit(ctx context.Context, snapshot CatalogSnapshot)

	// Snapshot returns the current snapshot.
	Snapshot(ctx context.Context) CatalogSnapshot
}

// ScenarioRepository persists the saved scenario list as a whole.
type ScenarioRepository interface {
	// LoadAll returns every saved scenario in insertion order.
	LoadAll(ctx context.Context) ([]SavedScenario, error)

	// SaveAll replaces the stored list.
	SaveAll(ctx context.Context, scenarios []SavedScenario) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
