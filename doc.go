// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package lockfree provides two lock-free concurrent container primitives
// intended as building blocks for parallel runtimes, task schedulers, and
// high-throughput producer/consumer pipelines:
//
//   - [Queue] is an unbounded, linked, multi-producer multi-consumer FIFO
//     queue. Any number of goroutines may call [Queue.Enqueue] and
//     [Queue.Dequeue] concurrently.
//   - [Deque] is a bounded, circular, single-owner multi-thief work-stealing
//     deque. One goroutine pushes and pops at the bottom; any number of other
//     goroutines may steal from the top.
//
// Both types are lock-free: at any instant at least one participating
// goroutine is guaranteed to complete its operation in a finite number of
// steps, even though any individual goroutine's operation may fail under
// contention ([Queue] retries up to a fixed budget; [Deque] does not retry).
// Neither type blocks on a mutex, logs, or frees internal storage
// explicitly; memory is reclaimed by the garbage collector once nothing
// references it.
//
// # Memory reclamation
//
// [Queue] never frees a node while any goroutine might still be traversing
// it; nodes become eligible for collection only once no live reference
// remains, which the Go runtime already guarantees without hazard pointers
// or epoch-based reclamation. [Deque] never shrinks or compacts its backing
// array; slots are simply overwritten by later pushes.
//
// # Element types
//
// T must be safe to copy or move as a Go value. [Queue] additionally
// requires that T be safe to read concurrently with assignment, since
// [Queue.Front] returns a copy of the current front element without
// removing it.
//
// # What this package does not do
//
// Bounded back-pressure for [Queue], dynamic growth for [Deque], priority
// ordering, persistence, and cross-process sharing are all out of scope.
// Callers that need those properties should compose one of these
// primitives with another layer rather than expect it here.
package lockfree
