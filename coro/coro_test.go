package coro

import (
	"errors"
	"testing"

	"github.com/momentics/rendezvous/api"
	"github.com/momentics/rendezvous/stackpool"
)

type fakeAllocator struct {
	allocated   int
	deallocated int
}

func (f *fakeAllocator) Allocate(size int) ([]byte, error) {
	f.allocated++
	return make([]byte, size), nil
}

func (f *fakeAllocator) Deallocate(block []byte) {
	f.deallocated++
}

// S6 — coroutine round trip: yield 1, 2, 3, then terminate.
func TestCoroutineYieldsThenTerminates(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})

	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		for _, v := range []int{1, 2, 3} {
			self.Resume(v)
		}
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got []int
	for i := 0; i < 3; i++ {
		c.Resume(0)
		if !c.HasData() {
			t.Fatalf("expected data after resume %d", i)
		}
		got = append(got, c.TakeResult())
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}

	c.Resume(0)
	if !c.IsTerminated() {
		t.Fatal("continuation should be terminated after the functor returns")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Resume on a terminated continuation must panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, api.ErrTerminated) {
			t.Fatalf("expected panic wrapping api.ErrTerminated, got %v", r)
		}
	}()
	c.Resume(0)
}

// Property 8: resume(x) followed by a symmetric yield from inside F
// returning y satisfies take_result() == y, round-tripping A and R.
func TestResumeRoundTripsArguments(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})

	c, err := Create(func(self *Continuation[string, int]) *Continuation[string, int] {
		self.Resume("first")
		n := self.TakeResult()
		self.Resume("got:" + itoa(n))
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Resume(0)
	if got := c.TakeResult(); got != "first" {
		t.Fatalf("expected %q, got %q", "first", got)
	}

	c.Resume(42)
	if got := c.TakeResult(); got != "got:42" {
		t.Fatalf("expected %q, got %q", "got:42", got)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Property 6: the stack backing a terminated coroutine is deallocated
// exactly once.
func TestStackDeallocatedExactlyOnce(t *testing.T) {
	fa := &fakeAllocator{}
	pool := stackpool.NewPool(4096, fa)

	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.Resume(0)
	if !c.IsTerminated() {
		t.Fatal("expected termination on first resume of a no-op body")
	}
	pool.Release()
	if fa.deallocated != 1 {
		t.Fatalf("expected exactly one deallocation, got %d", fa.deallocated)
	}
}

// Property 7: if F throws, the same exception is rethrown on the resumer
// after C terminates.
func TestPanicInsideBodyRethrownOnResumer(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})
	boom := errors.New("boom")

	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		panic(boom)
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	defer func() {
		r := recover()
		if r != boom {
			t.Fatalf("expected rethrown %v, got %v", boom, r)
		}
		if !c.IsTerminated() {
			t.Fatal("continuation must be terminated once its panic has been rethrown")
		}
	}()
	c.Resume(0)
	t.Fatal("Resume should have panicked")
}

func TestSignalExitTerminatesSuspendedCoroutine(t *testing.T) {
	fa := &fakeAllocator{}
	pool := stackpool.NewPool(4096, fa)

	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		self.Resume(1) // blocks here until SignalExit injects an unwind
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Resume(0)
	if !c.HasData() || c.TakeResult() != 1 {
		t.Fatal("expected the coroutine to yield 1 before parking")
	}

	SignalExit[int, int](c)
	if !c.IsTerminated() {
		t.Fatal("expected SignalExit to terminate the coroutine")
	}
	pool.Release()
	if fa.deallocated != 1 {
		t.Fatalf("expected the stack to be released exactly once, got %d", fa.deallocated)
	}
}

func TestSpliceRunsOnCallerAndPreservesContinuation(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})
	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		self.Resume(7)
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.Resume(0)
	c.TakeResult()

	result, same := Splice[int, int, int](c, func() int { return 99 })
	if result != 99 {
		t.Fatalf("expected 99, got %d", result)
	}
	if same != c {
		t.Fatal("Splice must return the same continuation identity")
	}
	SignalExit[int, int](c)
}

func TestSplicePropagatesPanicToCaller(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})
	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("expected panic %q to reach Splice's caller, got %v", "boom", r)
		}
		SignalExit[int, int](c)
	}()

	Splice[int, int, int](c, func() int { panic("boom") })
	t.Fatal("unreachable: Splice should have propagated the panic")
}

func TestSpliceCCPropagatesPanicToCaller(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})
	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("expected panic %q to reach SpliceCC's caller, got %v", "boom", r)
		}
		SignalExit[int, int](c)
	}()

	SpliceCC[int, int](c, func(*Continuation[int, int]) *Continuation[int, int] { panic("boom") })
	t.Fatal("unreachable: SpliceCC should have propagated the panic")
}
