// File: future/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/rendezvous/event"
)

// Promise is the write side of a single-listener future. SetValue may be
// called at most once; its value becomes visible to the Future returned by
// Future, and the underlying event fires.
type Promise[T any] struct {
	ev        *event.Event
	mu        sync.Mutex
	val       T
	fulfilled atomic.Bool
}

// NewPromise returns an unfulfilled Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ev: event.NewEvent(false)}
}

// SetValue fulfills the promise. Calling it twice panics, so the underlying
// event.Event is signaled at most once (Event.Signal itself does not check
// for a second call).
func (p *Promise[T]) SetValue(v T) {
	p.mu.Lock()
	if p.fulfilled.Load() {
		p.mu.Unlock()
		panic("future: SetValue called more than once")
	}
	p.val = v
	p.fulfilled.Store(true)
	p.mu.Unlock()
	p.ev.Signal()
}

// Future returns the read side bound to this promise.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{p: p}
}

// Future is the read side of a single-listener future, produced by
// Promise.Future or SharedFuture.AddListener.
type Future[T any] struct {
	p *Promise[T]
}

// GetEvent implements event.GetEventer, so a *Future[T] can be passed
// directly to event.WaitAll / event.WaitAny alongside plain events.
func (f *Future[T]) GetEvent() *event.Event { return f.p.ev }

// Ready reports whether the value has already been produced.
func (f *Future[T]) Ready() bool { return f.p.fulfilled.Load() }

// Wait blocks the calling goroutine, via latch, until the value is ready,
// then returns it. Calling Wait more than once on the same Future is a
// contract violation once the first call has registered against the
// underlying event and it has not yet fired; waiting on an already-ready
// Future is always safe and returns immediately.
func (f *Future[T]) Wait(latch event.CountdownLatch) T {
	if !f.Ready() {
		event.WaitAll(latch, f)
	}
	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	return f.p.val
}
