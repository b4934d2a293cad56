// Package event implements the lock-free, single-producer/single-consumer
// rendezvous cell that is the core synchronization primitive of the
// rendezvous module, plus the batched composite-wait operations layered
// directly on top of it (wait_many, dismiss_wait_many, WaitAll, WaitAny).
//
// An Event holds one of three states: empty, waited, or signaled. The
// producer calls Signal at most once; a single consumer registers interest
// with TryWait/Wait and may cancel with DismissWait. All three primitive
// operations are wait-free: each is bounded by exactly one atomic
// read-modify-write.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package event
