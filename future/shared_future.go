// File: future/shared_future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SharedFuture fans a single source Future out to any number of listeners.
// It is built from two pieces: multiplexer, the shared hub that registers
// itself as the source event's sole waiter and owns the fulfilled value
// once it arrives, and SharedFuture itself, a lightweight per-holder handle
// with its own listener future, so every clone can be waited on
// independently without the multiplexer itself blocking.

package future

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/rendezvous/event"
)

// multiplexer is the Go shape of the original shared_state_multiplexer: a
// Waiter that owns the source event and, once signaled, drains every queued
// listener promise under a mutex.
type multiplexer[T any] struct {
	mu        sync.Mutex
	signaled  bool
	val       T
	listeners *queue.Queue
}

func newMultiplexer[T any](src *Future[T]) *multiplexer[T] {
	m := &multiplexer[T]{listeners: queue.New()}
	var w event.Waiter = &multiplexerWaiter[T]{m: m, src: src}
	src.p.ev.Wait(&w)
	return m
}

// multiplexerWaiter carries the source Future alongside the multiplexer so
// Signal can read the fulfilled value once ownership of the source event
// transfers in.
type multiplexerWaiter[T any] struct {
	m   *multiplexer[T]
	src *Future[T]
}

func (mw *multiplexerWaiter[T]) Signal(_ *event.Event) {
	mw.src.p.mu.Lock()
	val := mw.src.p.val
	mw.src.p.mu.Unlock()

	mw.m.mu.Lock()
	mw.m.val = val
	mw.m.signaled = true
	pending := mw.m.listeners
	mw.m.listeners = queue.New()
	mw.m.mu.Unlock()

	for pending.Length() > 0 {
		p := pending.Remove().(*Promise[bool])
		p.SetValue(true)
	}
}

func (m *multiplexer[T]) addListener() *Future[bool] {
	m.mu.Lock()
	if m.signaled {
		m.mu.Unlock()
		p := NewPromise[bool]()
		p.SetValue(true)
		return p.Future()
	}
	p := NewPromise[bool]()
	m.listeners.Add(p)
	m.mu.Unlock()
	return p.Future()
}

// SharedFuture is a per-holder handle onto a multiplexed source future. Each
// SharedFuture created by NewSharedFuture or Clone owns its own listener
// future, so distinct holders can wait independently and concurrently.
type SharedFuture[T any] struct {
	state    *multiplexer[T]
	listener *Future[bool]
}

// NewSharedFuture builds a SharedFuture by taking over src's event as the
// multiplexer's sole registration. src must not be waited on directly after
// this call; it belongs to the multiplexer now.
func NewSharedFuture[T any](src *Future[T]) *SharedFuture[T] {
	state := newMultiplexer(src)
	return &SharedFuture[T]{state: state, listener: state.addListener()}
}

// Clone returns an independent handle onto the same shared value, with its
// own listener registration.
func (sf *SharedFuture[T]) Clone() *SharedFuture[T] {
	return &SharedFuture[T]{state: sf.state, listener: sf.state.addListener()}
}

// GetEvent implements event.GetEventer over this handle's own listener, so a
// *SharedFuture[T] composes with event.WaitAll / event.WaitAny.
func (sf *SharedFuture[T]) GetEvent() *event.Event { return sf.listener.GetEvent() }

// Ready reports whether the shared value has already been produced.
func (sf *SharedFuture[T]) Ready() bool { return sf.listener.Ready() }

// Get blocks, via latch, until the shared value is ready, then returns it.
func (sf *SharedFuture[T]) Get(latch event.CountdownLatch) T {
	sf.listener.Wait(latch)
	sf.state.mu.Lock()
	defer sf.state.mu.Unlock()
	return sf.state.val
}
