// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package nbcq implements the Non-Blocking Concurrent Queue algorithm from
// "Simple, Fast, and Practical Non-Blocking and Blocking Concurrent Queue
// Algorithms" by Maged M. Michael and Michael L. Scott (PODC96, corrected in
// JPDC 1998), with one deliberate departure from the textbook pseudocode: the
// linearization point of dequeue is the CAS that clears a node's data
// pointer, not the CAS that advances Head. Head is advanced afterward, on a
// best-effort basis, purely as a cleanup step that may be left to any
// goroutine. This matches the separately-allocated-data variant of the
// algorithm (data owned by an atomic pointer distinct from the node it
// lives in) rather than the single-CAS variant, because it is the variant
// that lets a node be unlinked from Head without racing a concurrent
// Front reading stale data out of it.
//
// Nodes are never returned to a free list and never reused while the queue
// is live: a node becomes eligible for garbage collection only once no
// goroutine holds a reference to it, which is exactly when it is safe to
// reclaim. This sidesteps the ABA problem that a manually-managed free list
// would reintroduce, at the cost of leaning on the Go runtime's garbage
// collector in place of hazard pointers or an epoch scheme.
package nbcq

import (
	"sync/atomic"

	"github.com/go-foundations/lockfree/internal/backoff"
)

// DefaultRetryBudget bounds the number of CAS-retry iterations a single
// PushBack or PopFront call will attempt before giving up. It exists only to
// bound pathological contention; under normal contention the loop succeeds
// within a handful of iterations.
const DefaultRetryBudget = 1000

type node[T any] struct {
	data atomic.Pointer[T]
	next atomic.Pointer[node[T]]
}

// Queue is a Michael & Scott multi-producer multi-consumer FIFO queue. The
// zero value is not ready to use; construct one with [New].
type Queue[T any] struct {
	head atomic.Pointer[node[T]]
	tail atomic.Pointer[node[T]]
}

// New returns an empty, ready-to-use Queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	dummy := &node[T]{}
	q.head.Store(dummy)
	q.tail.Store(dummy)
	return q
}

// PushBack appends v to the back of the queue. It always succeeds unless
// the retry budget is exhausted under pathological contention, in which
// case the element is silently discarded and PushBack returns false.
func (q *Queue[T]) PushBack(v T) bool {
	n := &node[T]{}
	n.data.Store(&v)

	var bo backoff.Backoff
	for attempt := 0; attempt < DefaultRetryBudget; attempt++ {
		last := q.tail.Load()
		next := last.next.Load()
		if last == q.tail.Load() {
			if next == nil {
				if last.next.CompareAndSwap(nil, n) {
					// Linearization point: n is now reachable from last.
					q.tail.CompareAndSwap(last, n)
					return true
				}
			} else {
				// Tail is lagging one link behind; help it catch up.
				q.tail.CompareAndSwap(last, next)
			}
		}
		bo.Wait()
	}
	return false
}

// PopFront removes and returns the front element of the queue. It reports
// false if the queue was empty, or if the retry budget was exhausted under
// pathological contention.
func (q *Queue[T]) PopFront() (T, bool) {
	var bo backoff.Backoff
	for attempt := 0; attempt < DefaultRetryBudget; attempt++ {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if next == nil {
					var zero T
					return zero, false
				}
				// Tail is lagging; help it catch up before retrying.
				q.tail.CompareAndSwap(last, next)
			} else {
				d := next.data.Load()
				if d == nil {
					// Another goroutine is mid-dequeue of this node; retry.
					bo.Wait()
					continue
				}
				if !next.data.CompareAndSwap(d, nil) {
					// Lost the race to claim this element; retry.
					bo.Wait()
					continue
				}
				// Linearization point: the element is now ours alone.
				// Advancing Head is best-effort cleanup; another goroutine
				// may have already done it for us.
				q.head.CompareAndSwap(first, next)
				return *d, true
			}
		}
		bo.Wait()
	}
	var zero T
	return zero, false
}

// Front returns a copy of the current front element without removing it. It
// reports false if the queue was empty at the moment of the read.
func (q *Queue[T]) Front() (T, bool) {
	first := q.head.Load()
	next := first.next.Load()
	if next == nil {
		var zero T
		return zero, false
	}
	d := next.data.Load()
	if d == nil {
		var zero T
		return zero, false
	}
	return *d, true
}

// Empty reports whether the queue had no elements at the moment of the
// read. The result may be stale by the time the caller observes it.
func (q *Queue[T]) Empty() bool {
	first := q.head.Load()
	last := q.tail.Load()
	return first == last && first.next.Load() == nil
}

// Len walks the queue counting nodes whose data is currently present. It is
// O(n) and, like Empty, best-effort: under concurrent dequeues it may
// transiently undercount.
func (q *Queue[T]) Len() int {
	n := 0
	cur := q.head.Load()
	next := cur.next.Load()
	for next != nil {
		if next.data.Load() != nil {
			n++
		}
		cur = next
		next = cur.next.Load()
	}
	return n
}
