//go:build !linux && !windows
// +build !linux,!windows

// File: stackpool/stackpool_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stackpool

type portableAllocator struct{}

func newStackAllocator() Allocator { return portableAllocator{} }

// Allocate falls back to a plain heap slice on platforms with no dedicated
// raw-mapping backend wired in yet.
func (portableAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Deallocate is a no-op; the GC reclaims the slice.
func (portableAllocator) Deallocate(block []byte) {}
