package coro

import (
	"testing"

	"github.com/momentics/rendezvous/control"
	"github.com/momentics/rendezvous/stackpool"
)

func TestUseInstrumentationTracksLiveCount(t *testing.T) {
	instr := control.NewInstrumentation()
	UseInstrumentation(instr)
	defer UseInstrumentation(nil)

	pool := stackpool.NewPool(4096, &fakeAllocator{})
	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		return self
	}, pool)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	state := instr.Debug.DumpState()
	if _, ok := state["coro.live"]; !ok {
		t.Fatal("expected coro.live probe to be registered")
	}

	c.Resume(0)
	if !c.IsTerminated() {
		t.Fatal("expected termination on first resume of a no-op body")
	}

	recent := instr.Metrics.Recent("coro.terminated")
	if len(recent) == 0 {
		t.Fatal("expected at least one coro.terminated observation")
	}
}

func TestCreateWithCPUDoesNotFailOnPinError(t *testing.T) {
	pool := stackpool.NewPool(4096, &fakeAllocator{})
	c, err := Create(func(self *Continuation[int, int]) *Continuation[int, int] {
		return self
	}, pool, WithCPU(0))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.Resume(0)
	if !c.IsTerminated() {
		t.Fatal("expected termination on first resume of a no-op body")
	}
}
