// File: stackpool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package stackpool allocates and recycles the fixed-size memory blocks a
// coroutine's continuation uses for its stack. The public API is OS
// agnostic; platform-specific allocation backends live in separate files,
// the same split the teacher's pool package uses for its buffer pools.
package stackpool
