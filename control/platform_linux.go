//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform metrics or debug probe integrations.

package control

import (
	"runtime"
)

// RegisterPlatformProbes registers the coro.availableCPUs probe: the valid
// upper bound for a coro.WithCPU(cpuID) argument. A cpuID outside
// [0, coro.availableCPUs) has no chance of a successful
// internal/affinity.Pin on this host.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("coro.availableCPUs", func() any {
		return runtime.NumCPU()
	})
}
