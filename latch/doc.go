// File: latch/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package latch implements CountdownLatch, a blocking capability used to
// park a thread on composite wait operations (event.WaitAll, event.WaitAny)
// until a target number of event.Waiter.Signal callbacks has landed.
//
// Event itself never blocks a calling goroutine; blocking only happens here,
// at the layer that owns a condition variable.
package latch
