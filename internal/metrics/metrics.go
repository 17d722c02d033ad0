// Package metrics exposes Prometheus instrumentation for the browser.
//
// Every method is safe on a nil *Metrics so components can run uninstrumented.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookshelf"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	catalogRequests *prometheus.CounterVec
	catalogLatency  *prometheus.HistogramVec
	browserActions  *prometheus.CounterVec
	wishlistToggles *prometheus.CounterVec
	wishlistSize    prometheus.Gauge
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Catalog API requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		catalogLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		browserActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "browser",
			Name:      "actions_total",
			Help:      "User actions handled by the result-set manager.",
		}, []string{"action"}),
		wishlistToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wishlist",
			Name:      "toggles_total",
			Help:      "Wishlist toggles by result.",
		}, []string{"result"}),
		wishlistSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wishlist",
			Name:      "size",
			Help:      "Distinct identifiers in the wishlist after the last toggle.",
		}),
	}
	m.registry.MustRegister(
		m.catalogRequests,
		m.catalogLatency,
		m.browserActions,
		m.wishlistToggles,
		m.wishlistSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveCatalogRequest records one catalog request.
func (m *Metrics) ObserveCatalogRequest(op string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.catalogRequests.WithLabelValues(op, outcome).Inc()
	m.catalogLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// IncAction counts one browser action.
func (m *Metrics) IncAction(action string) {
	if m == nil {
		return
	}
	m.browserActions.WithLabelValues(action).Inc()
}

// ObserveToggle records a wishlist toggle and the resulting list size.
func (m *Metrics) ObserveToggle(added bool, size int, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.wishlistToggles.WithLabelValues("failed").Inc()
		return
	case added:
		m.wishlistToggles.WithLabelValues("added").Inc()
	default:
		m.wishlistToggles.WithLabelValues("removed").Inc()
	}
	m.wishlistSize.Set(float64(size))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve starts an HTTP server exposing /metrics on addr. The returned
// function stops it.
func (m *Metrics) Serve(addr string) (stop func(context.Context) error, err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	return srv.Shutdown, nil
}
