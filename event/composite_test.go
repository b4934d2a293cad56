package event

import "testing"

type countingLatch struct {
	count  uint32
	target uint32
	self   Waiter
}

func newCountingLatch() *countingLatch {
	l := &countingLatch{}
	l.self = l
	return l
}

func (l *countingLatch) Token() *Waiter { return &l.self }
func (l *countingLatch) Reset()         { l.count = 0 }
func (l *countingLatch) Signal(*Event)  { l.count++ }
func (l *countingLatch) Wait(target uint32) {
	if l.count < target {
		panic("countingLatch is a synchronous test double, it cannot actually block")
	}
	l.count -= target
}

// S5 — wait_any of 3 (one pre-signaled, two empty): returns after the
// pre-signaled event is detected during registration; the two empty events
// are dismissed; the latch is never blocked on.
func TestWaitAnyPreSignaledFastPath(t *testing.T) {
	signaled := NewEvent(true)
	e1 := NewEvent(false)
	e2 := NewEvent(false)

	latch := newCountingLatch()
	WaitAny(latch, signaled, e1, e2)

	if e1.state.Load() != nil {
		t.Fatal("e1 should have been dismissed back to empty")
	}
	if e2.state.Load() != nil {
		t.Fatal("e2 should have been dismissed back to empty")
	}
}

func TestWaitManyPostcondition(t *testing.T) {
	e1 := NewEvent(true)
	e2 := NewEvent(false)
	e3 := NewEvent(false)
	events := []*Event{e1, e2, nil, e3}

	rw := &recordingWaiter{}
	var w Waiter = rw
	signaled, waited := WaitMany(&w, events)

	nonNil := 0
	for _, e := range events {
		if e != nil {
			nonNil++
		}
	}
	if signaled+waited != nonNil {
		t.Fatalf("signaled(%d)+waited(%d) != non-nil count(%d)", signaled, waited, nonNil)
	}
	if signaled != 1 || waited != 2 {
		t.Fatalf("expected 1 signaled, 2 waited, got %d/%d", signaled, waited)
	}

	// clean up the two registered waits before the test ends.
	DismissWaitMany(&w, events)
}

func TestWaitAllBlocksForEachRegisteredEvent(t *testing.T) {
	e1 := NewEvent(false)
	e2 := NewEvent(false)
	latch := newCountingLatch()
	latch.Reset()

	_, waited := WaitMany(latch.Token(), []*Event{e1, e2})
	if waited != 2 {
		t.Fatalf("expected both fresh events to register as waited, got %d", waited)
	}
	e1.Signal()
	e2.Signal()
	latch.Wait(uint32(waited)) // panics (via the test double) if under-signaled
}
