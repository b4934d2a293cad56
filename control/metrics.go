// control/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime metrics collector for system-level monitoring. Exposes counters
// in a thread-safe map with dynamic registration, plus a bounded recent-
// samples history per numeric key backed by the Vyukov ring buffer used
// elsewhere in this module.

package control

import (
	"sync"
	"time"

	"github.com/momentics/rendezvous/internal/rt"
)

const historyCapacity = 64

// MetricsRegistry holds mutable and read-only metrics, plus a bounded
// history of recent numeric observations per key.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	history map[string]*rt.LockFreeQueue[float64]
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
		history: make(map[string]*rt.LockFreeQueue[float64]),
	}
}

// Set sets or updates a metric key to an arbitrary value.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Observe records a numeric sample under key, updating its latest value and
// appending to its bounded recent-samples ring, evicting the oldest sample
// once the ring is full.
func (mr *MetricsRegistry) Observe(key string, value float64) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	ring, ok := mr.history[key]
	if !ok {
		ring = rt.NewLockFreeQueue[float64](historyCapacity)
		mr.history[key] = ring
	}
	mr.mu.Unlock()

	for !ring.Enqueue(value) {
		if _, ok := ring.Dequeue(); !ok {
			break
		}
	}
}

// Recent returns a copy of key's bounded sample history, oldest first. It
// drains and rebuilds the underlying ring, so concurrent Observe calls on
// the same key during a Recent call may be momentarily invisible to it.
func (mr *MetricsRegistry) Recent(key string) []float64 {
	mr.mu.RLock()
	ring, ok := mr.history[key]
	mr.mu.RUnlock()
	if !ok {
		return nil
	}

	var out []float64
	for {
		v, ok := ring.Dequeue()
		if !ok {
			break
		}
		out = append(out, v)
	}
	for _, v := range out {
		ring.Enqueue(v)
	}
	return out
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}
