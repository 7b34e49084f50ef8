// Package server owns the HTTP transport: the listener, the shared
// middleware chain, and graceful shutdown. Routes are mounted by the
// application wiring, not here.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/trendtrails/server/internal/logger"
)

// Config holds HTTP server settings. Timeouts are in seconds.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// Server wraps http.Server with h2c support, so HTTP/2 works without
// TLS behind a terminating proxy.
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New creates a server for the given handler.
func New(cfg Config, handler http.Handler, log *logger.Logger) *Server {
	h2s := &http2.Server{}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	return &Server{
		http: &http.Server{
			Addr:         addr,
			Handler:      h2c.NewHandler(handler, h2s),
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
		},
		log: log.WithComponent("server"),
	}
}

// Start serves until Shutdown is called. It blocks.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", map[string]interface{}{"addr": s.http.Addr})
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("HTTP server shutting down")
	return s.http.Shutdown(ctx)
}
