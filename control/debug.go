// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/rendezvous/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Probe returns the current value of the named probe. It reports
// api.ErrNotFound if name was never registered, the same contract a caller
// reaching into DumpState()[name] would otherwise have to reconstruct by
// hand with a comma-ok map lookup.
func (dp *DebugProbes) Probe(name string) (any, error) {
	dp.mu.RLock()
	fn, ok := dp.probes[name]
	dp.mu.RUnlock()
	if !ok {
		return nil, api.ErrNotFound
	}
	return fn(), nil
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// Counter is a monotonically adjustable int64 meant to back a DebugProbes
// entry: a package Adds to it as domain events occur and reports the
// running total through RegisterProbe, instead of declaring its own
// atomic.Int64 plus closure for the same purpose.
type Counter struct {
	n atomic.Int64
}

// Add adjusts the counter by delta and returns the new value.
func (c *Counter) Add(delta int64) int64 { return c.n.Add(delta) }

// Load returns the counter's current value.
func (c *Counter) Load() int64 { return c.n.Load() }

// RegisterProbe exposes c's running value under name on dp.
func (c *Counter) RegisterProbe(dp *DebugProbes, name string) {
	dp.RegisterProbe(name, func() any { return c.Load() })
}

// NewCounterProbe creates a Counter already registered under name on dp.
func NewCounterProbe(dp *DebugProbes, name string) *Counter {
	c := &Counter{}
	c.RegisterProbe(dp, name)
	return c
}
