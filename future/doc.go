// File: future/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package future provides a single-listener Future/Promise pair built on
// event.Event, and SharedFuture, a multiplexer that fans one event out to
// many listeners by implementing the event.Waiter trait itself.
package future
