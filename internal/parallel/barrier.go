// SPDX-License-Identifier: MIT

package parallel

import "sync"

// Barrier is a reusable cyclic barrier for a fixed number of parties.
// The last party to arrive runs the trip action (if any) before releasing
// the others, so the action's writes are visible to every party after Wait.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
	broken  bool
	action  func()
}

// NewBarrier returns a barrier for parties goroutines. Panics if parties < 1.
func NewBarrier(parties int, action func()) *Barrier {
	if parties < 1 {
		panic("parallel: NewBarrier: parties must be >= 1")
	}
	b := &Barrier{parties: parties, action: action}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Wait blocks until all parties have called Wait for the current generation.
// It returns ErrBrokenBarrier if the barrier is or becomes broken.
func (b *Barrier) Wait() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken {
		return ErrBrokenBarrier
	}
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		if b.action != nil {
			b.action()
		}
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()

		return nil
	}
	for gen == b.gen && !b.broken {
		b.cond.Wait()
	}
	if gen == b.gen {
		return ErrBrokenBarrier
	}

	return nil
}

// Break marks the barrier broken and releases every waiting party.
func (b *Barrier) Break() {
	b.mu.Lock()
	b.broken = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Generation returns how many times the barrier has tripped.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.gen
}
