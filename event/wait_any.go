// File: event/wait_any.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// wait_all / wait_any composite protocols, built from WaitMany and
// DismissWaitMany. The only blocking call in either protocol is the
// latch's own Wait.

package event

// CountdownLatch is the capability WaitAll/WaitAny consume: a blocking
// counter used as the default Waiter (see package latch for the concrete
// implementation). Token returns a stable *Waiter identifying the latch
// itself, so registering it against many events never allocates — the
// pointer is owned by the latch instance for its whole lifetime, mirroring
// how the original C++ passes a raw &latch with no heap traffic.
type CountdownLatch interface {
	Waiter
	Reset()
	Wait(target uint32)
	// Token returns the stable *Waiter to register with events.
	Token() *Waiter
}

// WaitAll registers latch against every resolved event in waitables, then
// blocks until every event that was actually registered (i.e. was not
// already signaled) has fired.
func WaitAll(latch CountdownLatch, waitables ...any) {
	latch.Reset()
	events := Events(waitables...)
	_, waited := WaitMany(latch.Token(), events)
	if waited > 0 {
		latch.Wait(uint32(waited))
	}
}

// WaitAny registers latch against every resolved event, then returns once
// exactly one signal has been observed and consumed by the caller. All
// other registrations are guaranteed to be either dismissed or already
// delivered and drained by the time WaitAny returns — no wakeup is lost
// and none is double-delivered.
func WaitAny(latch CountdownLatch, waitables ...any) {
	latch.Reset()
	events := Events(waitables...)
	signaled, waited := WaitMany(latch.Token(), events)

	if signaled == 0 {
		latch.Wait(1)
	}

	dismissed := DismissWaitMany(latch.Token(), events)
	pending := waited - dismissed
	if signaled == 0 {
		// One of the pending signals is the wake we already consumed above.
		pending--
	}
	if pending > 0 {
		latch.Wait(uint32(pending))
	}
}
