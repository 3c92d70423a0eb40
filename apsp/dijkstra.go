// SPDX-License-Identifier: MIT

package apsp

import (
	"container/heap"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/matrix"
)

const opDijkstra = "Dijkstra"

// Dijkstra computes shortest distances with one single-source Dijkstra per
// vertex. Sources are independent work items on the worker pool and each
// writes only its own output row. Self-distance is 0 whatever the diagonal
// holds.
//
// Negative weights are rejected up front with ErrNegativeWeight.
// Complexity: Time O(V³ log V) on dense graphs, Space O(V²).
func (s *Solver) Dijkstra(graph *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(graph); err != nil {
		return nil, fmt.Errorf("%s: %w", opDijkstra, err)
	}
	n, inf := graph.Rows(), graph.Sentinel()
	adj := graph.RawData()
	for idx, w := range adj {
		if w < 0 {
			return nil, fmt.Errorf("%s: edge %d→%d weight=%d: %w", opDijkstra, idx/n, idx%n, w, ErrNegativeWeight)
		}
	}

	start := time.Now()
	out, err := matrix.NewFilled(n, n, inf, matrix.WithSentinel(inf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDijkstra, err)
	}
	dist := out.RawData()
	err = parallel.ForEach(n, func(src int) {
		shortestFrom(adj, dist[src*n:(src+1)*n], n, src, inf)
	},
		parallel.WithWorkers(s.opts.parallelism),
		parallel.WithSpawner(s.opts.spawn),
		parallel.WithLogger(s.opts.log),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", opDijkstra, n, n, err)
	}
	s.opts.log.Debug("dijkstra done",
		zap.Int("vertices", n), zap.Duration("elapsed", time.Since(start)))

	return out, nil
}

// shortestFrom fills dist (pre-set to inf) with distances from src.
// Stale queue entries are skipped on pop instead of being decreased in place.
func shortestFrom(adj, dist []int64, n, src int, inf int64) {
	done := make([]bool, n)
	dist[src] = 0
	q := vertexQueue{{v: src}}

	var (
		cur queued
		d   int64
	)
	for q.Len() > 0 {
		cur = heap.Pop(&q).(queued)
		if done[cur.v] {
			continue
		}
		done[cur.v] = true
		for v, w := range adj[cur.v*n : (cur.v+1)*n] {
			if done[v] || w >= inf {
				continue
			}
			if d = matrix.SatAdd(cur.d, w, inf); d < dist[v] {
				dist[v] = d
				heap.Push(&q, queued{v: v, d: d})
			}
		}
	}
}

// queued is a tentative distance d for vertex v.
type queued struct {
	v int
	d int64
}

// vertexQueue is a min-heap of queued ordered by distance.
type vertexQueue []queued

func (q vertexQueue) Len() int           { return len(q) }
func (q vertexQueue) Less(i, j int) bool { return q[i].d < q[j].d }
func (q vertexQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *vertexQueue) Push(x any) { *q = append(*q, x.(queued)) }

func (q *vertexQueue) Pop() any {
	old := *q
	last := old[len(old)-1]
	*q = old[:len(old)-1]

	return last
}
