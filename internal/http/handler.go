package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/observability"
)

// CatalogRefresher starts a new catalog fetch generation.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (domain.CatalogSnapshot, error)
}

// Handler handles HTTP requests.
type Handler struct {
	calculator *domain.CalculatorService
	scenarios  *domain.ScenarioService
	catalog    domain.CatalogStore
	refresher  CatalogRefresher
	defaults   *config.DefaultsConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	calculator *domain.CalculatorService,
	scenarios *domain.ScenarioService,
	catalog domain.CatalogStore,
	refresher CatalogRefresher,
	defaults *config.DefaultsConfig,
) *Handler {
	return &Handler{
		calculator: calculator,
		scenarios:  scenarios,
		catalog:    catalog,
		refresher:  refresher,
		defaults:   defaults,
	}
}

type saveScenarioRequest struct {
	Name   string                   `json:"name"`
	Inputs domain.CalculationInputs `json:"inputs"`
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Snapshot(r.Context())

	writeJSON(r.Context(), w, http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"catalog_loaded":     snapshot.Loaded,
		"catalog_generation": snapshot.Generation,
	})
}

// HandleCatalog returns the committed catalog snapshot, optionally filtered by media type.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Snapshot(r.Context())

	if raw := r.URL.Query().Get("media_type"); raw != "" {
		mediaType, ok := domain.ParseMediaType(raw)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown media type %q", raw), http.StatusBadRequest)
			return
		}

		snapshot.Entities = snapshot.ByMediaType(mediaType)
	}

	writeJSON(r.Context(), w, http.StatusOK, snapshot)
}

// HandleRefresh starts a new catalog fetch generation and waits for it.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	snapshot, err := h.refresher.Refresh(ctx)
	switch {
	case errors.Is(err, loader.ErrSuperseded):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, loader.ErrClosed):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil && !snapshot.Loaded:
		logger.Warn("catalog refresh aborted", observability.Error(err))
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		logger.Error("catalog refresh failed", observability.Error(err))
		writeJSON(ctx, w, http.StatusBadGateway, snapshot)
		return
	}

	writeJSON(ctx, w, http.StatusOK, snapshot)
}

// HandleCalculate evaluates calculator inputs. Omitted fields take the configured defaults.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inputs := h.defaults.Inputs("")
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if inputs.EntityID == "" {
		http.Error(w, "entity_id is required", http.StatusBadRequest)
		return
	}

	evaluation, err := h.calculator.Calculate(ctx, inputs)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, evaluation)
}

// HandleListScenarios returns saved scenarios in insertion order.
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.scenarios.List(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, scenarios)
}

// HandleSaveScenario saves the posted inputs under a name.
func (h *Handler) HandleSaveScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := saveScenarioRequest{Inputs: h.defaults.Inputs("")}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	scenario, err := h.scenarios.Save(ctx, req.Name, req.Inputs)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, scenario)
}

// HandleGetScenario returns one saved scenario.
func (h *Handler) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithScenario(r.Context(), r.PathValue("id"))

	scenario, err := h.scenarios.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, scenario)
}

// HandleLoadScenario returns a scenario's inputs for the caller to adopt.
func (h *Handler) HandleLoadScenario(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithScenario(r.Context(), r.PathValue("id"))

	inputs, err := h.scenarios.Load(ctx, r.PathValue("id"))
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, inputs)
}

// HandleDeleteScenario removes a saved scenario.
func (h *Handler) HandleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithScenario(r.Context(), r.PathValue("id"))

	if err := h.scenarios.Delete(ctx, r.PathValue("id")); err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCompareScenarios recomputes every saved scenario against the live catalog.
func (h *Handler) HandleCompareScenarios(w http.ResponseWriter, r *http.Request) {
	comparisons, err := h.scenarios.Compare(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, comparisons)
}

func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEntityNotFound), errors.Is(err, domain.ErrScenarioNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyScenarioName),
		errors.Is(err, domain.ErrInvalidInputs),
		errors.Is(err, domain.ErrInvalidPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		observability.FromContext(ctx).Error("request failed", observability.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
