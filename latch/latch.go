// File: latch/latch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package latch

import (
	"sync"

	"github.com/momentics/rendezvous/control"
	"github.com/momentics/rendezvous/event"
	"github.com/momentics/rendezvous/internal/rt"
)

const defaultSpinRounds = 64

// CountdownLatch is the concrete event.CountdownLatch: a Signal-driven
// counter with a short busy-spin phase ahead of the condition-variable wait,
// the same doubling-backoff shape the teacher's event loop uses before it
// pays for a timer.
type CountdownLatch struct {
	mu         sync.Mutex
	cond       *sync.Cond
	count      uint32
	self       event.Waiter
	spinRounds int
}

// New returns a ready-to-use CountdownLatch with the default spin-round
// count.
func New() *CountdownLatch {
	return newWithSpinRounds(defaultSpinRounds)
}

// NewFromConfig returns a CountdownLatch whose spin-round count is taken
// from cfg's "latch.spinRounds" key when present and positive, falling back
// to the default otherwise. This is the seam a caller uses to make the
// busy-spin phase runtime-tunable through control.ConfigStore instead of a
// compile-time constant.
func NewFromConfig(cfg *control.ConfigStore) *CountdownLatch {
	return newWithSpinRounds(cfg.SpinRounds(defaultSpinRounds))
}

func newWithSpinRounds(rounds int) *CountdownLatch {
	l := &CountdownLatch{spinRounds: rounds}
	l.cond = sync.NewCond(&l.mu)
	l.self = l
	return l
}

// Token returns the stable *event.Waiter identifying this latch. The
// pointer never changes for the lifetime of the latch, so registering it
// against many events allocates nothing.
func (l *CountdownLatch) Token() *event.Waiter { return &l.self }

// Signal implements event.Waiter. Called from whatever goroutine happens to
// drive an event.Event.Signal; it never blocks.
func (l *CountdownLatch) Signal(_ *event.Event) {
	l.mu.Lock()
	l.count++
	l.mu.Unlock()
	l.cond.Broadcast()
}

// Reset zeroes the internal counter ahead of a fresh composite wait.
func (l *CountdownLatch) Reset() {
	l.mu.Lock()
	l.count = 0
	l.mu.Unlock()
}

// Wait blocks the calling goroutine until at least target Signal callbacks
// have been observed since the last Reset, then consumes exactly target of
// them so the latch can be reused by a following composite wait.
func (l *CountdownLatch) Wait(target uint32) {
	spin := rt.NewBackoff(l.spinRounds)
	for i := 0; i < l.spinRounds; i++ {
		l.mu.Lock()
		reached := l.count >= target
		l.mu.Unlock()
		if reached {
			break
		}
		spin.Spin()
	}

	l.mu.Lock()
	for l.count < target {
		l.cond.Wait()
	}
	l.count -= target
	l.mu.Unlock()
}
