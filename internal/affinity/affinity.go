// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_windows.go, ...)
// guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its current OS thread and attempts to
// pin that thread to cpuID. On platforms without a supported affinity call,
// the thread lock still takes effect but Pin returns an error.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// Unpin releases the OS thread lock taken by Pin. Call it from the same
// goroutine that called Pin.
func Unpin() {
	runtime.UnlockOSThread()
}
