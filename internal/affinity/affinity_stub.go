//go:build !linux && !windows
// +build !linux,!windows

// File: internal/affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for unsupported platforms. Returns an error to
// indicate unavailability; the OS thread lock from Pin still applies.

package affinity

import "github.com/momentics/rendezvous/api"

func setAffinityPlatform(cpuID int) error {
	return api.ErrNotSupported
}
