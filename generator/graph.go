// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"slices"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/minplus/matrix"
)

const methodGraph = "Graph"

// frame is one suspended vertex of the random walk: edges to cands[pos:limit]
// are still to be placed. cands is truncated to limit so a deep walk holds
// only the edges it may still place.
type frame struct {
	v     int
	cands []int
	pos   int
	limit int
}

// walker carries the state of one Graph call.
type walker struct {
	cfg      config
	n        int
	inf      int64
	d        []int64
	directed bool
	weighted bool
}

// Graph returns a size×size adjacency matrix with at most edgeBudget edges
// placed by a random walk. Undirected edges are mirrored and count once
// against the budget. The diagonal is 0 and absent edges hold the sentinel.
//
// With WithDisjointFilter the vertices left without any incident edge are
// removed (vertex order is preserved); if none has an edge the start vertex
// alone is returned as a 1×1 matrix.
//
// Errors: ErrInvalidSize, ErrInvalidBudget, ErrInvalidWeight.
// Complexity: O(size²) memory; O(size) work per visited vertex.
func Graph(size, edgeBudget int, directed, weighted bool, opts ...Option) (*matrix.Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodGraph, size, ErrInvalidSize)
	}
	if edgeBudget < 0 {
		return nil, fmt.Errorf("%s: edgeBudget=%d: %w", methodGraph, edgeBudget, ErrInvalidBudget)
	}
	cfg := gatherConfig(opts...)
	if cfg.maxWeight >= cfg.sentinel {
		return nil, fmt.Errorf("%s: maxWeight=%d sentinel=%d: %w", methodGraph, cfg.maxWeight, cfg.sentinel, ErrInvalidWeight)
	}
	g, err := matrix.NewDistance(size, matrix.WithSentinel(cfg.sentinel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraph, err)
	}

	w := &walker{cfg: cfg, n: size, inf: cfg.sentinel, d: g.RawData(), directed: directed, weighted: weighted}
	start := cfg.rng.Intn(size)
	w.walk(start, edgeBudget)

	if cfg.disjointFilter {
		return w.connected(start)
	}

	return g, nil
}

// open shuffles the vertices not yet adjacent to v and draws how many of
// them v links to, bounded by the remaining budget.
func (w *walker) open(v, budget int) frame {
	f := frame{v: v}
	row := w.d[v*w.n : (v+1)*w.n]
	for j, x := range row {
		if j != v && x >= w.inf {
			f.cands = append(f.cands, j)
		}
	}
	if bound := min(budget, len(f.cands)); bound > 0 {
		w.cfg.rng.Shuffle(len(f.cands), func(a, b int) { f.cands[a], f.cands[b] = f.cands[b], f.cands[a] })
		f.limit = w.cfg.rng.Intn(bound)
	}
	f.cands = slices.Clone(f.cands[:f.limit])

	return f
}

func (w *walker) weight() int64 {
	if !w.weighted {
		return 1
	}

	return w.cfg.rng.Int63n(w.cfg.maxWeight + 1)
}

// walk places edges depth-first from start until the budget is spent or
// every frame is exhausted.
func (w *walker) walk(start, budget int) {
	stack := []frame{w.open(start, budget)}
	for len(stack) > 0 && budget > 0 {
		top := &stack[len(stack)-1]
		if top.pos >= top.limit {
			stack = stack[:len(stack)-1]
			continue
		}
		v, u := top.v, top.cands[top.pos]
		top.pos++
		// A mirrored edge from a deeper frame may already cover (v,u).
		if w.d[v*w.n+u] < w.inf {
			continue
		}
		wt := w.weight()
		w.d[v*w.n+u] = wt
		if !w.directed {
			w.d[u*w.n+v] = wt
		}
		budget--
		stack = append(stack, w.open(u, budget))
	}
}

// connected returns the submatrix induced by vertices with at least one
// incident edge.
func (w *walker) connected(start int) (*matrix.Dense, error) {
	keep := new(bit.Set)
	var i, j int
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			if i != j && w.d[i*w.n+j] < w.inf {
				keep.Add(i).Add(j)
			}
		}
	}
	if keep.Empty() {
		keep.Add(start)
	}

	idx := make([]int, 0, keep.Size())
	keep.Visit(func(v int) (skip bool) {
		idx = append(idx, v)
		return false
	})

	m := len(idx)
	out, err := matrix.NewDense(m, m, matrix.WithSentinel(w.inf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraph, err)
	}
	od := out.RawData()
	for a, src := range idx {
		for b, dst := range idx {
			od[a*m+b] = w.d[src*w.n+dst]
		}
	}

	return out, nil
}
