// File: stackpool/stackpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform stack allocator with transparent backend selection and a
// free-list recycling layer in front of it, mirroring pool.BufferPoolManager's
// split between a portable manager and platform-specific newBufferPool.

package stackpool

import (
	"sync"

	"github.com/momentics/rendezvous/control"
)

// DefaultStackSize is the reservation handed to a continuation that does
// not ask for a specific size.
const DefaultStackSize = 1 << 20 // 1 MiB

// MinAlignment is the minimum alignment newStackAllocator backends guarantee.
const MinAlignment = 16

// Allocator allocates and releases fixed-size memory blocks. Deallocate
// must be called at most once per block returned by Allocate, and only with
// a slice it actually returned.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Deallocate(block []byte)
}

// Pool recycles same-sized blocks from an underlying Allocator through a
// free list, so steady-state coroutine churn does not repeatedly pay for
// mmap/VirtualAlloc.
type Pool struct {
	mu    sync.Mutex
	free  [][]byte
	size  int
	alloc Allocator
}

// NewPool creates a Pool serving blocks of exactly size bytes from backend.
// A nil backend selects the platform default (newStackAllocator).
func NewPool(size int, backend Allocator) *Pool {
	if size <= 0 {
		size = DefaultStackSize
	}
	if backend == nil {
		backend = newStackAllocator()
	}
	return &Pool{size: size, alloc: backend}
}

// NewPoolFromConfig builds a Pool the same way NewPool(0, nil) does, except
// its block size is taken from cfg's "stackpool.size" key when present and
// positive, giving a caller a live tuning knob through control.ConfigStore
// instead of only DefaultStackSize.
func NewPoolFromConfig(cfg *control.ConfigStore) *Pool {
	return NewPool(cfg.StackSize(DefaultStackSize), nil)
}

// Get returns a block of the pool's configured size, reusing a freed block
// when one is available.
func (p *Pool) Get() ([]byte, error) {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		block := p.free[n-1]
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return block, nil
	}
	p.mu.Unlock()
	return p.alloc.Allocate(p.size)
}

// Put returns block to the free list for reuse. block must have come from
// Get on this same Pool.
func (p *Pool) Put(block []byte) {
	p.mu.Lock()
	p.free = append(p.free, block)
	p.mu.Unlock()
}

// Release permanently frees every block currently sitting in the pool's
// free list, returning them to the backend allocator.
func (p *Pool) Release() {
	p.mu.Lock()
	free := p.free
	p.free = nil
	p.mu.Unlock()
	for _, b := range free {
		p.alloc.Deallocate(b)
	}
}
