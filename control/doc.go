// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime configuration, metrics, and debug introspection for the
// rendezvous substrate: latch spin tuning, stack pool sizing, coroutine
// and event counters, and platform debug probes.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Bounded-history metrics telemetry
//   - State export, debug hooks, and probe registration
//
// Platform probes are build-tag-partitioned: RegisterPlatformProbes is
// defined for Linux and Windows only, so the package does not build for
// other GOOS values.
package control
