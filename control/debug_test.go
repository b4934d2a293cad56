package control

import (
	"errors"
	"testing"

	"github.com/momentics/rendezvous/api"
)

func TestDebugProbesProbeReturnsNotFound(t *testing.T) {
	dp := NewDebugProbes()
	if _, err := dp.Probe("no.such.probe"); !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("expected api.ErrNotFound, got %v", err)
	}

	c := NewCounterProbe(dp, "coro.live")
	c.Add(3)
	v, err := dp.Probe("coro.live")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if v.(int64) != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestDebugProbesRegisterAndDump(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("coro.live", func() any { return 3 })
	RegisterPlatformProbes(dp)

	state := dp.DumpState()
	if state["coro.live"] != 3 {
		t.Fatalf("expected 3, got %v", state["coro.live"])
	}
	if _, ok := state["coro.availableCPUs"]; !ok {
		t.Fatal("expected coro.availableCPUs probe to be registered")
	}
}
