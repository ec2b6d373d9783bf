package store

import (
	"context"
	"fmt"

	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/observability"
)

// KV is a byte-oriented key-value backend.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// Repository persists the scenario list as a single document under a namespace key.
type Repository struct {
	kv        KV
	namespace string
}

// NewRepository creates a new scenario repository.
func NewRepository(kv KV, namespace string) *Repository {
	return &Repository{
		kv:        kv,
		namespace: namespace,
	}
}

// LoadAll returns every stored scenario in insertion order.
// Older document versions are migrated in memory and rewritten on the next save.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.SavedScenario, error) {
	data, ok, err := r.kv.Get(ctx, r.namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.namespace, err)
	}
	if !ok {
		return []domain.SavedScenario{}, nil
	}

	scenarios, version, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if version != 0 && version < CurrentVersion {
		observability.FromContext(ctx).Info("migrating stored scenarios",
			observability.String("namespace", r.namespace),
			observability.Int("from_version", version),
			observability.Int("to_version", CurrentVersion),
			observability.Int("scenarios", len(scenarios)))
	}

	return scenarios, nil
}

// SaveAll replaces the stored list.
func (r *Repository) SaveAll(ctx context.Context, scenarios []domain.SavedScenario) error {
	data, err := Encode(scenarios)
	if err != nil {
		return err
	}

	if err := r.kv.Put(ctx, r.namespace, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.namespace, err)
	}
	return nil
}
