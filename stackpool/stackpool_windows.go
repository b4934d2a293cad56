//go:build windows
// +build windows

// File: stackpool/stackpool_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stackpool

import (
	"fmt"
	"unsafe"

	"github.com/momentics/rendezvous/api"
	"golang.org/x/sys/windows"
)

var (
	kern32           = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAlloc = kern32.NewProc("VirtualAlloc")
	procVirtualFree  = kern32.NewProc("VirtualFree")
)

const (
	memCommitReserve = windows.MEM_RESERVE | windows.MEM_COMMIT
	memRelease       = 0x8000
)

type windowsAllocator struct{}

func newStackAllocator() Allocator { return windowsAllocator{} }

// Allocate reserves size bytes via VirtualAlloc, read/write, no-execute.
func (windowsAllocator) Allocate(size int) ([]byte, error) {
	addr, _, err := procVirtualAlloc.Call(
		0, uintptr(size),
		uintptr(memCommitReserve),
		uintptr(windows.PAGE_READWRITE),
	)
	if addr == 0 {
		return nil, fmt.Errorf("stackpool: %w: VirtualAlloc failed: %v", api.ErrResourceExhausted, err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// Deallocate releases a block previously returned by Allocate.
func (windowsAllocator) Deallocate(block []byte) {
	if len(block) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&block[0]))
	procVirtualFree.Call(addr, 0, uintptr(memRelease))
}
