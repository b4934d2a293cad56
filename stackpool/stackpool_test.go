package stackpool

import (
	"testing"

	"github.com/momentics/rendezvous/control"
)

type fakeAllocator struct {
	allocated   int
	deallocated int
}

func (f *fakeAllocator) Allocate(size int) ([]byte, error) {
	f.allocated++
	return make([]byte, size), nil
}

func (f *fakeAllocator) Deallocate(block []byte) {
	f.deallocated++
}

func TestPoolReusesReleasedBlocks(t *testing.T) {
	fa := &fakeAllocator{}
	p := NewPool(4096, fa)

	b1, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	p.Put(b1)

	b2, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fa.allocated != 1 {
		t.Fatalf("expected exactly one backend allocation, got %d", fa.allocated)
	}
	_ = b2
}

func TestPoolReleaseReturnsFreeBlocksToBackend(t *testing.T) {
	fa := &fakeAllocator{}
	p := NewPool(4096, fa)

	b1, _ := p.Get()
	b2, _ := p.Get()
	p.Put(b1)
	p.Put(b2)

	p.Release()
	if fa.deallocated != 2 {
		t.Fatalf("expected 2 deallocations, got %d", fa.deallocated)
	}
}

func TestPoolDefaultsSizeWhenNonPositive(t *testing.T) {
	p := NewPool(0, &fakeAllocator{})
	if p.size != DefaultStackSize {
		t.Fatalf("expected default size %d, got %d", DefaultStackSize, p.size)
	}
}

func TestNewPoolFromConfigUsesOverride(t *testing.T) {
	cfg := control.NewConfigStore()
	cfg.SetConfig(map[string]any{"stackpool.size": 8192})

	p := NewPoolFromConfig(cfg)
	if p.size != 8192 {
		t.Fatalf("expected size 8192 from config, got %d", p.size)
	}
}

func TestNewPoolFromConfigFallsBackToDefault(t *testing.T) {
	cfg := control.NewConfigStore()
	p := NewPoolFromConfig(cfg)
	if p.size != DefaultStackSize {
		t.Fatalf("expected default size %d, got %d", DefaultStackSize, p.size)
	}
}

func TestPlatformAllocatorRoundTrip(t *testing.T) {
	a := newStackAllocator()
	block, err := a.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(block) != 4096 {
		t.Fatalf("expected 4096 bytes, got %d", len(block))
	}
	a.Deallocate(block)
}
