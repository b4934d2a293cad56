// File: coro/exit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package coro

// SignalExit forces a suspended coroutine to unwind and terminate the next
// time it would otherwise be resumed, without running any further user
// code beyond whatever defers are already pending on its stack. c must not
// be terminated already. After SignalExit returns, c is terminated and its
// stack has been released back to its pool.
//
// This is the Go shape of the original's signal_exit: there, resuming a
// continuation into a tiny function that immediately throws exit_exception
// forces the same unwind-to-cleanup path a normal return would take.
func SignalExit[A, R any](c *Continuation[A, R]) {
	if c.terminated {
		return
	}
	x := c.raw.switchTo(nil, &exitSignal{abnormal: false})
	c.absorb(x)
}
