// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package lockfree

import "github.com/go-foundations/lockfree/internal/nbcq"

// Queue is an unbounded, lock-free, multi-producer multi-consumer FIFO
// queue. Any number of goroutines may call its methods concurrently. The
// zero value is not ready to use; construct one with [NewQueue].
type Queue[T any] struct {
	impl *nbcq.Queue[T]
}

// NewQueue returns an empty Queue ready for concurrent use.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{impl: nbcq.New[T]()}
}

// Enqueue appends v to the back of the queue. Under pathological
// contention the queue's retry budget may be exhausted, in which case v is
// silently discarded, mirroring the C++ original this package was ported
// from; see DESIGN.md for the reasoning behind keeping that behavior
// unsignaled rather than surfacing a distinct error.
func (q *Queue[T]) Enqueue(v T) {
	q.impl.PushBack(v)
}

// Dequeue removes and returns the front element of the queue. It reports
// false if the queue was empty, or if the retry budget was exhausted under
// pathological contention — both are ordinary, expected outcomes, not
// errors.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.impl.PopFront()
}

// Front returns a copy of the current front element without removing it.
// It reports false if the queue was empty at the moment of the read.
func (q *Queue[T]) Front() (T, bool) {
	return q.impl.Front()
}

// Empty reports whether the queue had no elements at the moment of the
// read. The result may already be stale by the time the caller observes
// it.
func (q *Queue[T]) Empty() bool {
	return q.impl.Empty()
}

// Size returns the number of elements currently reachable in the queue,
// computed by an O(n) traversal. Like Empty, it is a best-effort snapshot
// and may undercount transiently under concurrent dequeues.
func (q *Queue[T]) Size() int {
	return q.impl.Len()
}
