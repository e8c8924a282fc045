// Package server serves the daemon's HTTP surface: Prometheus metrics, a
// health report and the trigger_input endpoint feeding the subscriber queue.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	maxInputBody    = 1 << 10
	shutdownTimeout = 5 * time.Second
)

// Status is the body of the /healthz response.
type Status struct {
	Status        string `json:"status"`
	Interface     string `json:"interface"`
	TriggerSource string `json:"trigger_source"`
	LastOutcome   string `json:"last_outcome,omitempty"`
}

// StatusFunc reports the daemon's current state. Status is filled in by the server.
type StatusFunc func() Status

// Server is the HTTP server.
type Server struct {
	httpServer *http.Server
	publisher  port.SignalPublisher
	status     StatusFunc
}

// New creates a server listening on addr. A nil publisher disables /trigger_input.
func New(addr string, publisher port.SignalPublisher, status StatusFunc) *Server {
	s := &Server{
		publisher: publisher,
		status:    status,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route multiplexer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.publisher != nil {
		mux.HandleFunc("/trigger_input", s.handleTriggerInput)
	}
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := logging.WithComponent("server")

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	logger.WithField("addr", ln.Addr().String()).Info("HTTP server started (with /metrics)")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP server shutdown failed")
		return err
	}
	logger.Debug("HTTP server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var st Status
	if s.status != nil {
		st = s.status()
	}
	st.Status = StatusHealthy
	if st.LastOutcome != "" && st.LastOutcome != "success" {
		st.Status = StatusDegraded
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

// handleTriggerInput accepts {"data": <bool>}, a bare JSON boolean or an empty body.
// The value is forwarded as is; any message triggers one dispatch.
func (s *Server) handleTriggerInput(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxInputBody+1))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if len(body) > maxInputBody {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}

	value, err := parseInput(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.publisher.Publish(value)
	w.WriteHeader(http.StatusAccepted)
}

func parseInput(body []byte) (bool, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true, nil
	}

	var bare bool
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var msg struct {
		Data *bool `json:"data"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return false, fmt.Errorf("invalid trigger_input message: %w", err)
	}
	if msg.Data == nil {
		return false, errors.New(`invalid trigger_input message: missing "data"`)
	}
	return *msg.Data, nil
}
