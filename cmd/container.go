package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/unitecon/internal/backend"
	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
	apihttp "github.com/davidbz/unitecon/internal/http"
	"github.com/davidbz/unitecon/internal/http/middleware"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/observability"
	"github.com/davidbz/unitecon/internal/store"
)

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Backend catalog source
	if err := container.Provide(func(cfg *backend.Config) domain.CatalogSource {
		return backend.NewClient(cfg)
	}); err != nil {
		log.Fatalf("Failed to provide backend client: %v", err)
	}

	// Catalog snapshot and its loader
	if err := container.Provide(func() domain.CatalogStore {
		return domain.NewInMemoryCatalog()
	}); err != nil {
		log.Fatalf("Failed to provide catalog store: %v", err)
	}
	if err := container.Provide(loader.NewLoader); err != nil {
		log.Fatalf("Failed to provide catalog loader: %v", err)
	}
	if err := container.Provide(func(l *loader.Loader) apihttp.CatalogRefresher {
		return l
	}); err != nil {
		log.Fatalf("Failed to provide catalog refresher: %v", err)
	}

	// Scenario persistence
	if err := container.Provide(func(cfg *store.Config) (store.Backend, error) {
		return store.Open(context.Background(), cfg)
	}); err != nil {
		log.Fatalf("Failed to provide scenario store: %v", err)
	}
	if err := container.Provide(func(kv store.Backend, cfg *store.Config) domain.ScenarioRepository {
		return store.NewRepository(kv, cfg.Namespace)
	}); err != nil {
		log.Fatalf("Failed to provide scenario repository: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewCalculatorService); err != nil {
		log.Fatalf("Failed to provide calculator service: %v", err)
	}
	if err := container.Provide(domain.NewScenarioService); err != nil {
		log.Fatalf("Failed to provide scenario service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(apihttp.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(apihttp.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// refreshCatalog loads the catalog once for one-shot commands.
func refreshCatalog(ctx context.Context, l *loader.Loader) (domain.CatalogSnapshot, error) {
	snapshot, err := l.Refresh(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load catalog: %w", err)
	}
	return snapshot, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
