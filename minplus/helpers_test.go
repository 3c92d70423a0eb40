// SPDX-License-Identifier: MIT

package minplus_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/matrix"
)

// mustRows builds a Dense from rows or fails the test.
func mustRows(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// naive is the textbook triple loop, written independently of the engines.
func naive(a, b *matrix.Dense) [][]int64 {
	inf := a.Sentinel()
	ar, br := a.ToRows(), b.ToRows()
	out := make([][]int64, a.Rows())
	for i := range out {
		out[i] = make([]int64, b.Cols())
		for j := range out[i] {
			best := inf
			for k := 0; k < a.Cols(); k++ {
				if s := matrix.SatAdd(ar[i][k], br[k][j], inf); s < best {
					best = s
				}
			}
			out[i][j] = best
		}
	}

	return out
}

// assertSameMatrix fails with a cmp diff when got differs from want.
func assertSameMatrix(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	if want.Sentinel() != got.Sentinel() {
		t.Fatalf("sentinel: want %d, got %d", want.Sentinel(), got.Sentinel())
	}
	if diff := cmp.Diff(want.ToRows(), got.ToRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

var errPoolExhausted = errors.New("pool exhausted")

// refusingSpawner accepts only the first `accept` workers.
type refusingSpawner struct {
	inner  parallel.Spawner
	accept int
	calls  int
}

func (r *refusingSpawner) Submit(task func()) error {
	r.calls++
	if r.calls > r.accept {
		return errPoolExhausted
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
