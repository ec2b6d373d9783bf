package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/http/middleware"
	"github.com/davidbz/unitecon/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

// Routes returns the API mux wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	mux.HandleFunc("GET /v1/catalog", s.handler.HandleCatalog)
	mux.HandleFunc("POST /v1/catalog/refresh", s.handler.HandleRefresh)
	mux.HandleFunc("POST /v1/calculate", s.handler.HandleCalculate)
	mux.HandleFunc("GET /v1/scenarios", s.handler.HandleListScenarios)
	mux.HandleFunc("POST /v1/scenarios", s.handler.HandleSaveScenario)
	mux.HandleFunc("GET /v1/scenarios/compare", s.handler.HandleCompareScenarios)
	mux.HandleFunc("GET /v1/scenarios/{id}", s.handler.HandleGetScenario)
	mux.HandleFunc("GET /v1/scenarios/{id}/inputs", s.handler.HandleLoadScenario)
	mux.HandleFunc("DELETE /v1/scenarios/{id}", s.handler.HandleDeleteScenario)

	if s.middlewares == nil {
		return mux
	}

	// Apply middleware chain.
	return s.middlewares(mux)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Serve serves on an existing listener and blocks until the server stops.
func (s *Server) Serve(listener net.Listener) error {
	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
