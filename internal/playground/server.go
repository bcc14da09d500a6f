// File: server.go
// Title: Playground HTTP Server
// Description: HTTP server exposing the websocket playground at /ws and a
//              health probe at /healthz.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package playground

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/internal/journal"
)

// Config holds server configuration
type Config struct {
	Addr           string
	MaxSourceBytes int
	MaxIterations  int
	Timeout        time.Duration
	ReadTimeout    time.Duration
	Version        string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:           "127.0.0.1:8088",
		MaxSourceBytes: 64 * 1024,
		Timeout:        5 * time.Second,
		ReadTimeout:    30 * time.Second,
		Version:        "dev",
	}
}

// Server is the playground HTTP server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	logger     *sbmllog.Logger
	config     Config
}

// New creates a playground server. store may be nil to skip journaling.
func New(cfg Config, store journal.Store, logger *sbmllog.Logger) *Server {
	if logger == nil {
		logger = sbmllog.GetDefault()
	}
	logger = logger.WithField("component", "playground")

	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxSourceBytes <= 0 {
		cfg.MaxSourceBytes = defaults.MaxSourceBytes
	}

	ws := NewHandler(cfg, store, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", ws)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           loggingMiddleware(logger, mux),
			ReadHeaderTimeout: cfg.ReadTimeout,
		},
		handler: ws,
		logger:  logger,
		config:  cfg,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting playground", sbmllog.Fields{"addr": s.config.Addr})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return sbmlerror.Wrap(err, "playground server failed").
			WithCode(sbmlerror.CodeInternal).
			WithOperation("playground.ListenAndServe")
	case <-ctx.Done():
	}

	s.logger.Info("stopping playground")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.config.Addr
}

func loggingMiddleware(logger *sbmllog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Debug("http request", sbmllog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper captures the status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}
