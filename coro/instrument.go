// File: coro/instrument.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package coro

import (
	"sync/atomic"

	"github.com/momentics/rendezvous/control"
)

var (
	instrumentation atomic.Pointer[control.Instrumentation]
	liveCount       control.Counter
)

// UseInstrumentation wires instr into this package: each Create and each
// termination records the resulting live-continuation count through
// instr.Metrics under "coro.created"/"coro.terminated" respectively (not a
// cumulative total of creations or terminations), and instr.Debug gains a
// "coro.live" probe reporting how many continuations are currently spawned
// but not yet terminated. Passing nil detaches instrumentation.
func UseInstrumentation(instr *control.Instrumentation) {
	instrumentation.Store(instr)
	if instr != nil {
		liveCount.RegisterProbe(instr.Debug, "coro.live")
	}
}

func recordCreated() {
	n := liveCount.Add(1)
	if instr := instrumentation.Load(); instr != nil {
		instr.Metrics.Observe("coro.created", float64(n))
	}
}

func recordTerminated() {
	n := liveCount.Add(-1)
	if instr := instrumentation.Load(); instr != nil {
		instr.Metrics.Observe("coro.terminated", float64(n))
	}
}
