// File: internal/rt/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package rt holds small runtime helpers shared by the rest of the module:
// a doubling spin/backoff used before falling back to a blocking wait, and
// a lock-free bounded ring buffer adapted from the teacher's executor
// queue, now repurposed as control's metrics sample history.
package rt
