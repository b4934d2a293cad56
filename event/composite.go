// File: event/composite.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batched operations over a range of events sharing a single waiter
// registration. Ordering across the slice is unspecified; each individual
// per-event operation obeys the contract in event.go.

package event

// WaitMany calls TryWait(w) on every non-nil entry of events and returns
// (signaledCount, waitedCount). Their sum equals the number of non-nil
// entries.
func WaitMany(w *Waiter, events []*Event) (signaled, waited int) {
	for _, e := range events {
		if e == nil {
			continue
		}
		if e.TryWait(w) {
			waited++
		} else {
			signaled++
		}
	}
	return signaled, waited
}

// DismissWaitMany calls DismissWait(w) on every non-nil entry of events and
// returns the number of successful dismissals.
func DismissWaitMany(w *Waiter, events []*Event) (dismissed int) {
	for _, e := range events {
		if e == nil {
			continue
		}
		if e.DismissWait(w) {
			dismissed++
		}
	}
	return dismissed
}

// GetEventer is the Go realization of the C++ get_event ADL customization
// point: any "waitable" object can plug into WaitAll/WaitAny by exposing
// its underlying *Event. The lifetime of the result matches the receiver;
// only TryWait/DismissWait should be invoked on it directly, since the
// receiver retains logical ownership until a signal actually fires.
type GetEventer interface {
	GetEvent() *Event
}

// resolveEvent adapts an arbitrary Waitable (a *Event or a GetEventer) to
// its underlying *Event, or nil if x is neither.
func resolveEvent(x any) *Event {
	switch v := x.(type) {
	case nil:
		return nil
	case *Event:
		return v
	case GetEventer:
		return v.GetEvent()
	default:
		return nil
	}
}

// Events adapts a slice of Waitables to their underlying events, in order,
// via GetEventer. Entries that resolve to nil are preserved as nil so
// WaitMany/DismissWaitMany's "non-null entries only" rule still applies.
func Events(waitables ...any) []*Event {
	out := make([]*Event, len(waitables))
	for i, x := range waitables {
		out[i] = resolveEvent(x)
	}
	return out
}
