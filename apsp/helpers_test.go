// SPDX-License-Identifier: MIT

package apsp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/minplus/apsp"
	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/matrix"
	"github.com/katalvlaran/minplus/minplus"
)

func mustRows(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

func assertSameMatrix(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want.ToRows(), got.ToRows()); diff != "" {
		t.Fatalf("distance mismatch (-want +got):\n%s", diff)
	}
}

// algorithm is one way of computing all-pairs distances.
type algorithm struct {
	name string
	run  func(*matrix.Dense) (*matrix.Dense, error)
}

// algorithms returns every solver path; all of them must agree.
func algorithms() []algorithm {
	conc := apsp.NewSolver(apsp.WithParallelism(4))
	seq := apsp.NewSolver(apsp.WithEngine(minplus.NewSequential()))
	wide := apsp.NewSolver(apsp.WithParallelism(64))

	return []algorithm{
		{"squaring/concurrent", conc.AllPairs},
		{"squaring/sequential", seq.AllPairs},
		{"floyd-warshall", seq.FloydWarshall},
		{"floyd-warshall/concurrent", conc.FloydWarshallConcurrent},
		{"floyd-warshall/concurrent-wide", wide.FloydWarshallConcurrent},
		{"dijkstra", conc.Dijkstra},
		{"dijkstra/wide", wide.Dijkstra},
		{"facade/squaring", apsp.AllPairsShortestPaths},
		{"facade/floyd-warshall", apsp.FloydWarshall},
	}
}

var errNoWorkers = errors.New("no workers available")

type refusingSpawner struct {
	inner  parallel.Spawner
	accept int
	calls  int
}

func (r *refusingSpawner) Submit(task func()) error {
	r.calls++
	if r.calls > r.accept {
		return errNoWorkers
	}

	return r.inner.Submit(task)
}

func (r *refusingSpawner) ReleaseTimeout(d time.Duration) error { return r.inner.ReleaseTimeout(d) }

func acceptOnly(n int) parallel.SpawnFunc {
	return func(size int) (parallel.Spawner, error) {
		inner, err := parallel.AntsSpawner(size)
		if err != nil {
			return nil, err
		}

		return &refusingSpawner{inner: inner, accept: n}, nil
	}
}
