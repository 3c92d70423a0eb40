// SPDX-License-Identifier: MIT

package parallel_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/minplus/internal/parallel"
)

// errNoGoroutines stands in for a runtime that cannot start another worker.
var errNoGoroutines = errors.New("no more goroutines")

// flakySpawner wraps the ants pool and refuses the failAt-th Submit (1-based).
type flakySpawner struct {
	inner  parallel.Spawner
	failAt int
	calls  int
}

func (f *flakySpawner) Submit(task func()) error {
	f.calls++
	if f.calls == f.failAt {
		return errNoGoroutines
	}

	return f.inner.Submit(task)
}

func (f *flakySpawner) ReleaseTimeout(d time.Duration) error { return f.inner.ReleaseTimeout(d) }

// refuseAt returns a SpawnFunc whose pool refuses the failAt-th worker.
func refuseAt(failAt int) parallel.SpawnFunc {
	return func(size int) (parallel.Spawner, error) {
		inner, err := parallel.AntsSpawner(size)
		if err != nil {
			return nil, err
		}

		return &flakySpawner{inner: inner, failAt: failAt}, nil
	}
}

// within fails the test if fn does not return in d (deadlock guard).
func within(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("call did not return within %v", d)
	}
}
