package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/navstack-dev/navstack/pkg/middleware"
	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/route"
)

// Config holds navigation service configuration.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// ReadHeaderTimeout bounds header reads (default 5s).
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration
}

// applyDefaults fills zero config values.
func (c *Config) applyDefaults() {
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 5 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Server exposes a route table's matcher over HTTP and WebSocket. It
// serves parse and serialize operations, the sorted table itself, and
// a live navigation session endpoint.
type Server struct {
	config  Config
	logger  *slog.Logger
	matcher *middleware.InstrumentedMatcher
	views   *route.ViewRegistry

	// registry is owned by the server so that multiple instances
	// never fight over global metric registration.
	registry *prometheus.Registry

	upgrader websocket.Upgrader

	httpServer *http.Server
}

// New creates a navigation service over a matcher. A nil logger
// defaults to slog.Default().
func New(config Config, matcher *nav.Matcher, views *route.ViewRegistry, logger *slog.Logger) *Server {
	config.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	return &Server{
		config:   config,
		logger:   logger,
		matcher:  middleware.Instrument(matcher, middleware.WithRegistry(registry)),
		views:    views,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler builds the HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/api/parse", s.handleParse)
	r.Post("/api/serialize", s.handleSerialize)
	r.Get("/api/href", s.handleHref)
	r.Get("/api/routes", s.handleRoutes)
	r.Get("/api/slug", s.handleSlug)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/live", s.handleLive)

	return r
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

// Run starts the server and blocks until a shutdown signal or a
// listener error.
func (s *Server) Run() error {
	if s.config.Address == "" {
		return fmt.Errorf("server: empty listen address")
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("navigation service starting",
			"address", s.config.Address,
			"routes", s.matcher.Table().Len())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
