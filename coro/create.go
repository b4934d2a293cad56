// File: coro/create.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package coro

import (
	"runtime"

	"github.com/momentics/rendezvous/api"
	"github.com/momentics/rendezvous/internal/affinity"
	"github.com/momentics/rendezvous/stackpool"
)

// createOptions holds the optional knobs Create accepts.
type createOptions struct {
	cpu int
}

// Option configures optional Create behavior.
type Option func(*createOptions)

// WithCPU pins the coroutine's OS thread to logical CPU cpuID for its
// entire lifetime, via internal/affinity.Pin. A failed pin (unsupported
// platform, invalid cpuID, insufficient privilege) does not fail Create;
// the coroutine still gets its own locked OS thread, just without a
// guaranteed core.
func WithCPU(cpuID int) Option {
	return func(o *createOptions) { o.cpu = cpuID }
}

// Create is the Go realization of create_context/callcc. body is invoked on
// a freshly spawned goroutine, pinned to its own OS thread for the lifetime
// of the coroutine so that whatever platform-affinity decisions the caller
// made about "this logical thread" survive the switch — the same guarantee
// the original's raw stack switch gives for free. body receives a
// continuation representing the caller with the signature reversed (it
// resumes with R to yield a value, and receives A back), and must return a
// continuation to switch to at exit; in the overwhelming common case that
// is simply the same continuation it was given, once it has nothing left to
// yield.
//
// Create reserves one stack-sized block from pool for the coroutine's
// lifetime; the block returns to pool from the goroutine that used it, once
// body returns or unwinds, mirroring the cleanup-trampoline-on-destination
// discipline: a stack is never freed by the code still running on it.
func Create[A, R any](
	body func(self *Continuation[R, A]) *Continuation[R, A],
	pool *stackpool.Pool,
	opts ...Option,
) (*Continuation[A, R], error) {
	block, err := pool.Get()
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted, api.ErrStackAllocFailed.Error()).
			WithContext("cause", err.Error())
	}

	o := createOptions{cpu: -1}
	for _, opt := range opts {
		opt(&o)
	}

	callerRaw, calleeRaw := newLinkedPair()
	go runBody(calleeRaw, body, pool, block, o.cpu)
	recordCreated()

	return &Continuation[A, R]{raw: callerRaw}, nil
}

func runBody[A, R any](
	calleeRaw *rawCont,
	body func(*Continuation[R, A]) *Continuation[R, A],
	pool *stackpool.Pool,
	block []byte,
	cpuID int,
) {
	if cpuID >= 0 {
		_ = affinity.Pin(cpuID)
		defer affinity.Unpin()
	} else {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	var finalExit *exitSignal
	func() {
		defer func() {
			if r := recover(); r != nil {
				if es, ok := r.(*exitSignal); ok {
					finalExit = es
					return
				}
				finalExit = &exitSignal{abnormal: true, payload: r}
			}
		}()

		first := <-calleeRaw.recv
		if first.exit != nil {
			panic(first.exit)
		}

		self := &Continuation[R, A]{raw: calleeRaw, insideCoroutine: true}
		if first.val != nil {
			self.data = first.val.(A)
			self.hasData = true
		}

		body(self)
	}()

	pool.Put(block)
	recordTerminated()
	calleeRaw.send <- xfer{final: true, exit: finalExit}
}
