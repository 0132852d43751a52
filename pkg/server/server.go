// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server exposes the chart suggestion engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// DefaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is unset.
const DefaultMaxBodyBytes int64 = 10 << 20

// Config holds HTTP server settings.
type Config struct {
	Addr         string
	CORS         CORSConfig
	MaxBodyBytes int64
	// Metrics toggles the /metrics endpoint.
	Metrics bool
}

// DefaultConfig listens on :8080 with permissive CORS and metrics enabled.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		CORS:         DefaultCORSConfig(),
		MaxBodyBytes: DefaultMaxBodyBytes,
		Metrics:      true,
	}
}

// Server serves chart suggestions. The engine can be swapped at runtime;
// a request keeps the engine it started with.
type Server struct {
	engine     atomic.Pointer[visualization.Engine]
	config     Config
	logger     *zap.Logger
	httpServer *http.Server
}

// NewServer creates a server around engine.
func NewServer(engine *visualization.Engine, config Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = visualization.NewEngine(logger)
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		config: config,
		logger: logger,
	}
	s.engine.Store(engine)
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Engine returns the engine currently serving requests.
func (s *Server) Engine() *visualization.Engine {
	return s.engine.Load()
}

// SetEngine replaces the serving engine.
func (s *Server) SetEngine(engine *visualization.Engine) {
	if engine == nil {
		return
	}
	s.engine.Store(engine)
}

// Handler builds the routed, compressed handler tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.instrument)
	r.Use(s.recoverer)
	if s.config.CORS.Enabled {
		r.Use(s.corsMiddleware)
	}

	r.Get("/health", s.handleHealth)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Route("/api", func(r chi.Router) {
		r.Post("/suggest-charts", s.handleSuggest)
		r.Post("/analyze", s.handleAnalyze)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return gzhttp.GzipHandler(r)
}

// Start listens until Stop is called. Request contexts derive from ctx.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	s.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
