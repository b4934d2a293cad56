// File: coro/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package coro implements symmetric stack-switched continuations.
//
// The original design switches a hardware stack pointer via a per-platform
// assembly leaf. Go gives user code no safe way to do that, so this
// package realizes the same trampoline discipline with a pair of goroutines
// handing control back and forth over an unbuffered channel: resuming a
// continuation sends a value and blocks until the other side switches back.
// Exactly one of the two goroutines runs at any instant, which is the
// property the original stack switch actually buys callers — this package
// trades the hardware mechanism for a logical one and keeps the contract.
package coro
