// File: event/alt.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Alternative Event realizations from the design space described in
// spec.md §4.1/§9 ("Alternative implementations" / "Open question — mixed
// atomics variant"). Neither is used by default — event.Event (the
// waitfree, single-CAS variant) is preferred, per spec guidance, unless a
// platform ships a documented double-word CAS. These are kept for design
// fidelity and are exercised by event/alt_test.go.
//
// Simplification: the primary Waiter interface's Signal(e *Event) is
// pinned to the concrete waitfree Event type, so ownership-transfer of
// "self" cannot be expressed generically for these alternative state
// machines without duplicating the whole Waiter ecosystem. Both variants
// below use a narrower callback, altWaiter, that only signals completion;
// they are a design-space reference for the state-transition algorithms,
// not drop-in substitutes wired into latch/future/coro.
package event

import (
	"runtime"
	"sync/atomic"
)

type altWaiter interface {
	Signal()
}

type dekkerState int32

const (
	dekkerEmpty dekkerState = iota
	dekkerCritical
	dekkerSignaled
	dekkerFired
)

// DekkerEvent is the "pure store+fence+load" alternative: signal and
// try_wait/dismiss_wait exclude each other via a store, a sequentially
// consistent fence, then a load, trading a single RMW for the possibility
// of a brief spin on the fence-protected critical window. Its advantage
// over the waitfree variant is that the fence cost can be amortized across
// a batch of events in a wait_many/dismiss_wait_many implementation (not
// duplicated here, since event.Event already covers the batched paths
// used elsewhere in this module).
type DekkerEvent struct {
	signaled  atomic.Int32 // dekkerState
	waited    atomic.Pointer[altWaiter]
	wasWaited bool
}

// NewDekkerEvent constructs a DekkerEvent, pre-signaled if requested.
func NewDekkerEvent(preSignaled bool) *DekkerEvent {
	e := &DekkerEvent{}
	if preSignaled {
		e.signaled.Store(int32(dekkerSignaled))
	} else {
		e.signaled.Store(int32(dekkerEmpty))
	}
	return e
}

func (e *DekkerEvent) loadState() dekkerState {
	for {
		s := dekkerState(e.signaled.Load())
		if s != dekkerCritical {
			return s
		}
		runtime.Gosched()
	}
}

// Signal transitions the event to signaled, dispatching to a registered
// waiter if one raced in first.
func (e *DekkerEvent) Signal() {
	e.signaled.Store(int32(dekkerCritical))
	w := e.waited.Load()
	if w == nil {
		e.signaled.Store(int32(dekkerSignaled))
		return
	}
	e.signaled.Store(int32(dekkerFired))
	(*w).Signal()
}

// TryWait registers w if the event is empty.
func (e *DekkerEvent) TryWait(w altWaiter) bool {
	waited := false
	if e.loadState() == dekkerEmpty {
		e.waited.Store(&w)
		waited = e.loadState() != dekkerSignaled
	}
	e.wasWaited = waited
	return waited
}

// DismissWait cancels a prior registration.
func (e *DekkerEvent) DismissWait() bool {
	e.waited.Store(nil)
	return e.wasWaited && e.loadState() != dekkerFired
}

// mixedPair is the boxed (waiter, state) pair the mixed-atomics variant
// swaps as a unit. Go has no portable double-word CAS, so this
// realization allocates a fresh box for every state change it attempts
// (construction, Signal, TryWait, DismissWait) to emulate it — a deliberate
// simplification; it is illustrative, not the module's hot path.
type mixedPair struct {
	waiter altWaiter
	state  dekkerState
}

// MixedAtomicsEvent emulates GPD_EVENT_IMPL_MIXED_ATOMICS: signal performs
// a lock-free "DCAS" (here, a boxed-pair CAS loop) instead of the
// Dekker-like store+fence+critical-window dance, so wait/dismiss_wait no
// longer need to spin on a critical marker.
type MixedAtomicsEvent struct {
	pair atomic.Pointer[mixedPair]
}

// NewMixedAtomicsEvent constructs a MixedAtomicsEvent, pre-signaled if requested.
func NewMixedAtomicsEvent(preSignaled bool) *MixedAtomicsEvent {
	e := &MixedAtomicsEvent{}
	s := dekkerEmpty
	if preSignaled {
		s = dekkerSignaled
	}
	e.pair.Store(&mixedPair{state: s})
	return e
}

// Signal transitions to signaled/fired, dispatching to any racing waiter.
func (e *MixedAtomicsEvent) Signal() {
	for {
		old := e.pair.Load()
		next := &mixedPair{waiter: old.waiter, state: dekkerSignaled}
		if old.waiter != nil {
			next.state = dekkerFired
		}
		if e.pair.CompareAndSwap(old, next) {
			if old.waiter != nil {
				old.waiter.Signal()
			}
			return
		}
	}
}

// TryWait registers w if the event is empty.
func (e *MixedAtomicsEvent) TryWait(w altWaiter) bool {
	old := e.pair.Load()
	if old.state != dekkerEmpty {
		return false
	}
	next := &mixedPair{waiter: w, state: dekkerEmpty}
	return e.pair.CompareAndSwap(old, next)
}

// DismissWait cancels a prior registration.
func (e *MixedAtomicsEvent) DismissWait() bool {
	for {
		old := e.pair.Load()
		if old.waiter == nil {
			return old.state != dekkerFired
		}
		next := &mixedPair{waiter: nil, state: old.state}
		if e.pair.CompareAndSwap(old, next) {
			return old.state != dekkerFired
		}
	}
}
