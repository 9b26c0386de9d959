package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/version"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

// StateSource exposes the live bot state to the operator endpoint.
type StateSource interface {
	Snapshot() domain.TradingSnapshot
	LiveSessions() int
}

type StateResponse struct {
	domain.TradingSnapshot
	LiveSessions int    `json:"liveSessions"`
	Version      string `json:"version"`
}

// NewHandler builds the operator router. A nil metrics handler leaves /metrics unrouted.
func NewHandler(state StateSource, metrics http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, StateResponse{
			TradingSnapshot: state.Snapshot(),
			LiveSessions:    state.LiveSessions(),
			Version:         version.Version,
		})
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
	}
}

// Server serves the operator handler until its context is cancelled.
type Server struct {
	listener net.Listener
	server   *http.Server
	logger   *slog.Logger
}

func Listen(addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	return &Server{
		listener: listener,
		server:   &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		logger:   logger,
	}, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()
	s.logger.Info("operator endpoint listening", "addr", s.Addr())

	select {
	case err := <-errCh:
		return fmt.Errorf("serve operator endpoint: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown operator endpoint: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve operator endpoint: %w", err)
	}

	return nil
}
