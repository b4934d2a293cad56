// File: event/instrument.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional reporting into control.Instrumentation. Unset by default, so the
// wait-free Signal/TryWait/DismissWait path pays nothing beyond a single
// atomic pointer load to check whether anyone is listening.

package event

import (
	"sync/atomic"

	"github.com/momentics/rendezvous/control"
)

var (
	instrumentation atomic.Pointer[control.Instrumentation]
	signalCount     control.Counter
)

// UseInstrumentation wires instr into this package: every Signal call is
// counted and reported through instr.Metrics under "event.signals", and
// instr.Debug gains an "event.signals" probe reporting the running total.
// Passing nil detaches instrumentation.
func UseInstrumentation(instr *control.Instrumentation) {
	instrumentation.Store(instr)
	if instr != nil {
		signalCount.RegisterProbe(instr.Debug, "event.signals")
	}
}

func recordSignal() {
	instr := instrumentation.Load()
	if instr == nil {
		return
	}
	n := signalCount.Add(1)
	instr.Metrics.Observe("event.signals", float64(n))
}
