package domain

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// InMemoryCatalog stores the committed catalog snapshot in memory.
type InMemoryCatalog struct {
	mu       sync.RWMutex
	snapshot CatalogSnapshot
}

// NewInMemoryCatalog creates an empty, not yet loaded catalog.
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{
		mu:       sync.RWMutex{},
		snapshot: CatalogSnapshot{Stats: map[string]HistoricalStat{}},
	}
}

// Commit replaces the current snapshot.
func (c *InMemoryCatalog) Commit(_ context.Context, snapshot CatalogSnapshot) {
	if snapshot.Stats == nil {
		snapshot.Stats = map[string]HistoricalStat{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
}

// Snapshot returns a copy of the current snapshot.
func (c *InMemoryCatalog) Snapshot(_ context.Context) CatalogSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := c.snapshot
	snapshot.Entities = slices.Clone(c.snapshot.Entities)
	snapshot.Stats = maps.Clone(c.snapshot.Stats)
	return snapshot
}
