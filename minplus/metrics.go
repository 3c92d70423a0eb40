// SPDX-License-Identifier: MIT

package minplus

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "minplus"

// Metrics holds Prometheus collectors for engine activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	products      *prometheus.CounterVec
	cells         *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	spawnFailures prometheus.Counter
	fallbacks     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		products: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "products_total",
			Help:      "Completed min-plus products by engine.",
		}, []string{"engine"}),
		cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cells_total",
			Help:      "Output cells computed by engine.",
		}, []string{"engine"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "product_duration_seconds",
			Help:      "Wall time of one min-plus product.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"engine"}),
		spawnFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "worker_spawn_failures_total",
			Help:      "Concurrent products whose worker pool could not be staffed.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sequential_fallbacks_total",
			Help:      "Concurrent products recomputed by the sequential engine.",
		}),
	}
	for _, c := range []prometheus.Collector{m.products, m.cells, m.duration, m.spawnFailures, m.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("minplus: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(engine string, cells int, d time.Duration) {
	if m == nil {
		return
	}
	m.products.WithLabelValues(engine).Inc()
	m.cells.WithLabelValues(engine).Add(float64(cells))
	m.duration.WithLabelValues(engine).Observe(d.Seconds())
}

func (m *Metrics) spawnFailed() {
	if m != nil {
		m.spawnFailures.Inc()
	}
}

func (m *Metrics) fellBack() {
	if m != nil {
		m.fallbacks.Inc()
	}
}
