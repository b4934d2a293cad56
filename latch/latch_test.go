package latch

import (
	"sync"
	"testing"
	"time"

	"github.com/momentics/rendezvous/control"
	"github.com/momentics/rendezvous/event"
)

func TestCountdownLatchWaitAllTwoEvents(t *testing.T) {
	l := New()
	e1 := event.NewEvent(false)
	e2 := event.NewEvent(false)

	done := make(chan struct{})
	go func() {
		event.WaitAll(l, e1, e2)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	e1.Signal()
	e2.Signal()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAll did not return after both events signaled")
	}
}

func TestCountdownLatchWaitAnyFirstWins(t *testing.T) {
	l := New()
	e1 := event.NewEvent(false)
	e2 := event.NewEvent(false)

	done := make(chan struct{})
	go func() {
		event.WaitAny(l, e1, e2)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	e1.Signal()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAny did not return after one event signaled")
	}
	e2.Signal()
}

func TestNewFromConfigUsesOverride(t *testing.T) {
	cfg := control.NewConfigStore()
	cfg.SetConfig(map[string]any{"latch.spinRounds": 8})

	l := NewFromConfig(cfg)
	if l.spinRounds != 8 {
		t.Fatalf("expected spinRounds 8 from config, got %d", l.spinRounds)
	}
}

func TestNewFromConfigFallsBackToDefault(t *testing.T) {
	cfg := control.NewConfigStore()
	l := NewFromConfig(cfg)
	if l.spinRounds != defaultSpinRounds {
		t.Fatalf("expected default spinRounds %d, got %d", defaultSpinRounds, l.spinRounds)
	}
}

func TestCountdownLatchReusableAcrossWaits(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for round := 0; round < 3; round++ {
		e1 := event.NewEvent(false)
		e2 := event.NewEvent(false)
		wg.Add(1)
		go func() {
			defer wg.Done()
			event.WaitAll(l, e1, e2)
		}()
		time.Sleep(5 * time.Millisecond)
		e1.Signal()
		e2.Signal()
	}
	wg.Wait()
}
