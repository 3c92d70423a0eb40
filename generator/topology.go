// SPDX-License-Identifier: MIT
// Package: generator
//
// topology.go — fixed topologies with uniform edge weight w.
//
// Contract:
//   • Vertices are 0..n-1; Star's hub is 0; Grid numbers cells row-major.
//   • Path and Cycle honor directed; Star and Grid always emit both arcs.
//   • Diagonal is 0, absent edges hold the sentinel (WithSentinel applies).
//   • w must be in [0, sentinel) (else ErrInvalidWeight).
//
// Every topology has closed-form shortest distances, which makes them exact
// fixtures for the all-pairs solvers.

package generator

import (
	"fmt"

	"github.com/katalvlaran/minplus/matrix"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodGrid     = "Grid"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minGridDim       = 1
)

// topology is a distance matrix under construction.
type topology struct {
	g        *matrix.Dense
	d        []int64
	n        int
	w        int64
	directed bool
}

func newTopology(method string, n, minNodes int, w int64, directed bool, opts []Option) (*topology, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minNodes, ErrTooFewVertices)
	}
	cfg := gatherConfig(opts...)
	if w < 0 || w >= cfg.sentinel {
		return nil, fmt.Errorf("%s: w=%d sentinel=%d: %w", method, w, cfg.sentinel, ErrInvalidWeight)
	}
	g, err := matrix.NewDistance(n, matrix.WithSentinel(cfg.sentinel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &topology{g: g, d: g.RawData(), n: n, w: w, directed: directed}, nil
}

// link places u→v, and v→u unless the topology is directed.
func (t *topology) link(u, v int) {
	t.d[u*t.n+v] = t.w
	if !t.directed {
		t.d[v*t.n+u] = t.w
	}
}

// Path returns the n-vertex path 0 → 1 → … → n-1.
func Path(n int, w int64, directed bool, opts ...Option) (*matrix.Dense, error) {
	t, err := newTopology(methodPath, n, minPathNodes, w, directed, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		t.link(i, i+1)
	}

	return t.g, nil
}

// Cycle returns the n-vertex ring i → (i+1)%n.
func Cycle(n int, w int64, directed bool, opts ...Option) (*matrix.Dense, error) {
	t, err := newTopology(methodCycle, n, minCycleNodes, w, directed, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.link(i, (i+1)%n)
	}

	return t.g, nil
}

// Complete returns K_n: every ordered pair of distinct vertices is an edge.
func Complete(n int, w int64, opts ...Option) (*matrix.Dense, error) {
	t, err := newTopology(methodComplete, n, minCompleteNodes, w, false, opts)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			t.link(u, v)
		}
	}

	return t.g, nil
}

// Star returns hub 0 joined to leaves 1..n-1 in both directions.
func Star(n int, w int64, opts ...Option) (*matrix.Dense, error) {
	t, err := newTopology(methodStar, n, minStarNodes, w, false, opts)
	if err != nil {
		return nil, err
	}
	for leaf := 1; leaf < n; leaf++ {
		t.link(0, leaf)
	}

	return t.g, nil
}

// Grid returns the rows×cols 4-neighbourhood lattice; cell (r, c) is vertex
// r*cols + c and every lattice edge goes both ways.
func Grid(rows, cols int, w int64, opts ...Option) (*matrix.Dense, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	t, err := newTopology(methodGrid, rows*cols, minGridDim, w, false, opts)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				t.link(u, u+1)
			}
			if r+1 < rows {
				t.link(u, u+cols)
			}
		}
	}

	return t.g, nil
}
