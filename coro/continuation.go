// File: coro/continuation.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package coro

import (
	"fmt"

	"github.com/momentics/rendezvous/api"
)

// Continuation is a typed, move-only handle onto a suspended execution.
// A is the type resume sends in; R is the type a yield or return delivers
// back. Exactly one goroutine owns a live Continuation at a time; calling
// Resume from two goroutines concurrently is a contract violation the same
// way double-waiting on an event is.
type Continuation[A, R any] struct {
	raw        *rawCont
	data       R
	hasData    bool
	terminated bool

	// insideCoroutine is set only on the continuation a coroutine body
	// runs with (the "self" handed to it by Create/runBody). It changes
	// how absorb treats an incoming exit token: delivered to the body
	// itself, an exit token means "unwind now", not "rethrow on return".
	insideCoroutine bool
}

// Resume marshals arg across the switch boundary and blocks until the
// other side switches back, then returns the same Continuation so callers
// can chain resume/take_result the way the original's call-then-deref idiom
// does. Resuming a terminated continuation panics.
func (c *Continuation[A, R]) Resume(arg A) *Continuation[A, R] {
	if c.terminated {
		panic(fmt.Errorf("coro: %w: Resume called on a terminated continuation", api.ErrTerminated))
	}
	x := c.raw.switchTo(arg, nil)
	c.absorb(x)
	return c
}

func (c *Continuation[A, R]) absorb(x xfer) {
	if x.exit != nil && c.insideCoroutine && !x.final {
		// SignalExit was invoked against this (suspended) continuation
		// from the outside: unwind the coroutine body immediately rather
		// than handing it a value to resume with.
		panic(x.exit)
	}
	if x.final {
		c.terminated = true
		c.hasData = false
		if x.exit != nil && x.exit.abnormal {
			panic(x.exit.payload)
		}
		return
	}
	if x.val == nil {
		c.hasData = false
		return
	}
	c.data = x.val.(R)
	c.hasData = true
}

// TakeResult consumes the pending transfer value. Panics if HasData is
// false, mirroring the original's asserted precondition on operator*.
func (c *Continuation[A, R]) TakeResult() R {
	if !c.hasData {
		panic("coro: TakeResult called with no pending data")
	}
	c.hasData = false
	return c.data
}

// HasData reports whether the last switch delivered a value not yet taken.
func (c *Continuation[A, R]) HasData() bool { return c.hasData }

// IsTerminated reports whether the continuation can still be resumed.
func (c *Continuation[A, R]) IsTerminated() bool { return c.terminated }

// Pilfer moves the raw switch pair out of c without performing a switch,
// leaving c terminated.
func (c *Continuation[A, R]) Pilfer() *rawCont {
	r := c.raw
	c.raw = nil
	c.terminated = true
	return r
}
