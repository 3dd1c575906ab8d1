// Package server serves hemicycle diagrams over HTTP.
//
// Routes:
//
//	GET  /health           liveness probe
//	GET  /                 HTML form with a party list field
//	POST /                 render the submitted list as SVG
//	GET  /api/v1/diagram   render ?parties=...&format=...&palette=...&seed=...
//	POST /api/v1/diagram   render a JSON request body
//
// Errors are returned as {"error": ..., "code": ...} with the codes of the
// errors package.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hemicycle/pkg/buildinfo"
	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

// Server renders diagrams for HTTP clients.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New returns a server that renders through runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Routes returns the HTTP handler with all routes and middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Get("/", s.handleForm)
	r.Post("/", s.handleFormSubmit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/diagram", s.handleDiagramQuery)
		r.Post("/diagram", s.handleDiagramJSON)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}

// NewCache opens the artifact cache described by cfg: Redis when a URL is
// set, otherwise no caching.
func NewCache(ctx context.Context, cfg Config) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewRedisCache(ctx, cfg.RedisURL)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := NewCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, cfg.KeyPrefix), logger)
	runner.TTL = cfg.CacheTTL
	defer runner.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           New(runner, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", append([]any{"addr", cfg.Addr, "cache", cfg.RedisURL != ""}, buildinfo.Fields()...)...)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
