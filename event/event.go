// File: event/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Event is the waitfree realization of GPD_EVENT_IMPL_WAITFREE: state lives
// in a single atomic pointer word with two sentinels (nil = empty, a fixed
// distinguished address = signaled); any other value is a *Waiter token
// belonging to the registered consumer. Signal is a plain atomic exchange;
// TryWait and DismissWait are each a single strong compare-and-swap. All
// three are wait-free, bounded by one atomic RMW.

package event

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/rendezvous/api"
)

// Waiter is the consumer-side callback abstraction. Signal takes ownership
// of the event: the callee is responsible for releasing or recycling it.
// Implementations are expected not to panic; a panicking Signal is
// equivalent to an uncaught exception on the producer's call stack.
type Waiter interface {
	Signal(e *Event)
}

// deleteWaiter drops the event on signal (its owning *Event simply becomes
// unreachable and is garbage collected).
type deleteWaiter struct{}

func (deleteWaiter) Signal(*Event) {}

// noopWaiter releases the event without any side effect, for use when the
// Event is embedded in a larger structure whose cleanup is managed
// elsewhere.
type noopWaiter struct{}

func (noopWaiter) Signal(*Event) {}

var (
	deleteWaiterValue Waiter = deleteWaiter{}
	noopWaiterValue   Waiter = noopWaiter{}

	// DeleteWaiter is the process-wide singleton token for deleteWaiter.
	DeleteWaiter = &deleteWaiterValue
	// NoopWaiter is the process-wide singleton token for noopWaiter.
	NoopWaiter = &noopWaiterValue

	// signaledSentinel is the fixed distinguished address representing the
	// Signaled state. It is never dereferenced as a real waiter.
	signaledMarkerValue Waiter = deleteWaiter{}
	signaledSentinel            = &signaledMarkerValue
)

// Event is a single-shot, single-producer/single-consumer rendezvous cell.
// The zero value is not usable; construct with NewEvent.
//
// Ownership: the *Event is owned by whichever party is entitled to touch it
// next. Before a wait is registered the producer/owner may drop it freely.
// Once TryWait installs a waiter token, ownership is implicitly pledged to
// whichever operation resolves the registration (Signal's callback, or a
// successful DismissWait, which hands ownership back to the caller).
type Event struct {
	state atomic.Pointer[Waiter]
}

// NewEvent constructs an Event, pre-signaled if requested.
func NewEvent(preSignaled bool) *Event {
	e := &Event{}
	if preSignaled {
		e.state.Store(signaledSentinel)
	}
	return e
}

func isWaiterToken(p *Waiter) bool {
	return p != nil && p != signaledSentinel
}

// Signal transitions the event to Signaled. If a consumer had registered a
// waiter, ownership of e transfers into that waiter's Signal callback and e
// must not be touched again by the caller.
func (e *Event) Signal() {
	old := e.state.Swap(signaledSentinel)
	recordSignal()
	if isWaiterToken(old) {
		(*old).Signal(e)
	}
}

// TryWait registers w with the event if it is currently Empty and returns
// true. If the event is already Signaled it returns false and leaves the
// state unchanged. Precondition: the event is not already Waited — calling
// TryWait twice without an intervening DismissWait/Signal is a contract
// violation and panics.
func (e *Event) TryWait(w *Waiter) bool {
	if w == nil {
		panic(fmt.Errorf("rendezvous/event: %w: TryWait called with a nil waiter token", api.ErrInvalidArgument))
	}
	old := e.state.Load()
	if isWaiterToken(old) {
		panic(fmt.Errorf("rendezvous/event: %w: TryWait precondition violated, event already waited", api.ErrAlreadyWaited))
	}
	if old == signaledSentinel {
		return false
	}
	// old observed nil (Empty); a concurrent Signal can only move it to
	// Signaled, so a failed CAS here can only mean that happened.
	return e.state.CompareAndSwap(nil, w)
}

// Wait registers w, synchronously invoking w.Signal(e) if the event was
// already signaled.
func (e *Event) Wait(w *Waiter) {
	if !e.TryWait(w) {
		(*w).Signal(e)
	}
}

// DismissWait cancels a prior registration. It returns true if the waiter
// is guaranteed not to fire (the event is back in Empty, or was already
// Empty), and false if the waiter has already fired or is about to
// (ownership has already transferred, or is in the process of doing so).
func (e *Event) DismissWait(w *Waiter) bool {
	old := e.state.Load()
	if old == nil {
		return true
	}
	if old == signaledSentinel {
		return false
	}
	return e.state.CompareAndSwap(old, nil)
}
