package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/observability"
)

// Loader events.
const (
	EventCatalogRefreshed    = "catalog.refreshed"
	EventCatalogRefreshError = "catalog.refresh_failed"
)

var (
	// ErrSuperseded is returned by a refresh whose generation was replaced by a newer one.
	ErrSuperseded = errors.New("catalog refresh superseded by a newer generation")

	// ErrClosed is returned once the loader has been closed.
	ErrClosed = errors.New("catalog loader closed")
)

// Loader fetches the catalog and statistics in generations and commits the latest one.
type Loader struct {
	source domain.CatalogSource
	store  domain.CatalogStore
	events domain.EventPublisher
	now    func() time.Time

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

// NewLoader creates a new catalog loader (DI constructor).
func NewLoader(
	source domain.CatalogSource,
	store domain.CatalogStore,
	events domain.EventPublisher,
) *Loader {
	return &Loader{
		source: source,
		store:  store,
		events: events,
		now:    time.Now,
	}
}

type fetchResult struct {
	adapters []domain.AdapterRecord
	prices   []domain.ProviderPriceRecord
	stats    map[string]domain.HistoricalStat
}

// Refresh starts a new fetch generation and cancels the one in flight, if any.
// Only a generation that is still current when its fetches finish is committed.
// A failed current generation commits an empty snapshot carrying the error.
func (l *Loader) Refresh(ctx context.Context) (domain.CatalogSnapshot, error) {
	generation, fetchCtx, cancel, err := l.begin(ctx)
	if err != nil {
		return domain.CatalogSnapshot{}, err
	}
	defer cancel()

	logger := observability.FromContext(ctx).With(observability.Uint64("generation", generation))
	logger.Debug("catalog refresh started")
	start := time.Now()

	result, fetchErr := l.fetch(fetchCtx)

	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return domain.CatalogSnapshot{}, ErrClosed
	case generation != l.generation:
		logger.Debug("catalog refresh discarded", observability.String("reason", "superseded"))
		return domain.CatalogSnapshot{}, ErrSuperseded
	}

	l.cancel = nil

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Debug("catalog refresh discarded", observability.Error(ctxErr))
		return domain.CatalogSnapshot{}, ctxErr
	}

	snapshot := domain.CatalogSnapshot{
		Generation: generation,
		Loaded:     true,
		FetchedAt:  l.now().UTC(),
	}

	if fetchErr != nil {
		snapshot.Error = fetchErr.Error()
		l.store.Commit(ctx, snapshot)

		logger.Error("catalog refresh failed", observability.Error(fetchErr))
		l.publish(ctx, EventCatalogRefreshError, map[string]interface{}{
			"generation": generation,
			"error":      fetchErr.Error(),
		})
		return snapshot, fetchErr
	}

	snapshot.Entities = domain.NormalizeCatalog(result.adapters, result.prices)
	snapshot.Stats = result.stats
	l.store.Commit(ctx, snapshot)

	logger.Info("catalog refreshed",
		observability.Int("entities", len(snapshot.Entities)),
		observability.Int("stats", len(snapshot.Stats)),
		observability.Duration("duration", time.Since(start)))
	l.publish(ctx, EventCatalogRefreshed, map[string]interface{}{
		"generation": generation,
		"entities":   len(snapshot.Entities),
	})

	return snapshot, nil
}

// Close aborts the in-flight generation and rejects later refreshes.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	return nil
}

// Generation returns the number of the latest started generation.
func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

func (l *Loader) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, nil, nil, ErrClosed
	}

	if l.cancel != nil {
		l.cancel()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	l.generation++
	l.cancel = cancel

	return l.generation, fetchCtx, cancel, nil
}

func (l *Loader) fetch(ctx context.Context) (fetchResult, error) {
	var result fetchResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		adapters, err := l.source.FetchAdapters(gctx)
		if err != nil {
			return err
		}
		result.adapters = adapters
		return nil
	})

	g.Go(func() error {
		prices, err := l.source.FetchProviderPrices(gctx)
		if err != nil {
			return err
		}
		result.prices = prices
		return nil
	})

	g.Go(func() error {
		stats, err := l.source.FetchStats(gctx)
		if err != nil {
			return err
		}
		result.stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return fetchResult{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	return result, nil
}

func (l *Loader) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if l.events == nil {
		return
	}
	l.events.Publish(ctx, eventType, data)
}
