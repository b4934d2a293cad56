//go:build linux
// +build linux

// File: stackpool/stackpool_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stackpool

import (
	"fmt"

	"github.com/momentics/rendezvous/api"
	"golang.org/x/sys/unix"
)

type linuxAllocator struct{}

func newStackAllocator() Allocator { return linuxAllocator{} }

// Allocate reserves an anonymous, private mapping sized to size, rounded up
// to a page by the kernel. mmap'd memory is page-aligned, well past
// MinAlignment.
func (linuxAllocator) Allocate(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("stackpool: %w: mmap failed: %v", api.ErrResourceExhausted, err)
	}
	return data, nil
}

// Deallocate unmaps a block previously returned by Allocate.
func (linuxAllocator) Deallocate(block []byte) {
	if len(block) == 0 {
		return
	}
	_ = unix.Munmap(block)
}
