// Package server exposes the evaluation pipeline over HTTP: a health probe,
// Prometheus metrics, and a websocket endpoint that streams term results as
// they are computed.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"reckon.dev/pkg/reckon/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// Server accepts evaluation requests from websocket clients and feeds them
// through the shared worker pool.
type Server struct {
	addr      string
	rateLimit float64
	streamer  domain.ResultStreamer
	upgrader  websocket.Upgrader
}

// New creates a Server listening on addr. rateLimit caps how many jobs each
// websocket connection may submit per second.
func New(addr string, rateLimit float64, streamer domain.ResultStreamer) *Server {
	return &Server{
		addr:      addr,
		rateLimit: rateLimit,
		streamer:  streamer,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Local tool, no cookies or credentials to protect.
				return true
			},
		},
	}
}

// Handler returns the HTTP routes served by Run.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ws", s.handleWS)

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("Serving", "addr", s.addr)

		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to serve", "addr", s.addr, "error", err)
			return fmt.Errorf("serve %s: %w", s.addr, err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down cleanly", "error", err)
			return fmt.Errorf("shutdown: %w", err)
		}

		slog.Debug("Server stopped")

		return nil
	})

	return group.Wait()
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}
