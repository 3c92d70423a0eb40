// SPDX-License-Identifier: MIT

package minplus

import "github.com/prometheus/client_golang/prometheus"

// WithSpawner exposes the pool factory override to minplus_test.
var WithSpawner = withSpawner

// ProductsCounter returns the products counter for engine.
func (m *Metrics) ProductsCounter(engine string) prometheus.Counter {
	return m.products.WithLabelValues(engine)
}

// SpawnFailuresCounter returns the spawn failure counter.
func (m *Metrics) SpawnFailuresCounter() prometheus.Counter { return m.spawnFailures }

// FallbacksCounter returns the fallback counter.
func (m *Metrics) FallbacksCounter() prometheus.Counter { return m.fallbacks }
