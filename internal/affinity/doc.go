// File: internal/affinity/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package affinity pins the calling goroutine's OS thread to a specific
// logical CPU. coro.Create already pins each coroutine's goroutine to one
// OS thread for its whole lifetime (Go requires that to honor "a
// continuation must only be resumed from the thread that currently holds
// it"); this package lets a caller additionally choose which core that
// thread runs on, the same knob the teacher's affinity package exposed for
// its reactor loops.
package affinity
