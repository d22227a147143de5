// Package telemetry holds the prometheus metrics for the MCP server.
package telemetry

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Status label values for tool calls.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics groups the collectors and the registry they are registered with.
type Metrics struct {
	Registry  *prometheus.Registry
	ToolCalls *prometheus.CounterVec
}

// New creates a private registry with the tool-call counter registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coords_tool_calls_total",
		Help: "MCP tool calls by tool name and outcome.",
	}, []string{"tool", "status"})
	reg.MustRegister(calls)

	return &Metrics{Registry: reg, ToolCalls: calls}
}

// ObserveCall records one tool call.
func (m *Metrics) ObserveCall(tool string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.ToolCalls.WithLabelValues(tool, status).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Expose serves /metrics on port in the background. The listener is bound
// before returning so a bad port is reported to the caller.
func (m *Metrics) Expose(port int, logger *zap.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	return srv, nil
}
