// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package lockfree

import (
	"sync/atomic"

	"github.com/go-foundations/lockfree/internal/cerr"
	"github.com/go-foundations/lockfree/internal/wsdeque"
)

// DefaultDequeCapacity is the capacity [NewDeque] uses when given a
// non-positive value, matching the capacity of the deque this package was
// ported from.
const DefaultDequeCapacity = 4096

// ErrMisusedOwner is the panic value raised when two owner-side calls
// (PushBottom or PopBottom) overlap. Concurrent owner-side access is a
// precondition violation, not a runtime error the algorithm itself needs
// to tolerate; this guard exists only to turn a silent correctness bug
// into a loud one.
const ErrMisusedOwner = cerr.Error("lockfree: concurrent owner-side call on Deque")

// Deque is a bounded, lock-free, circular work-stealing deque. Exactly one
// goroutine — the owner — may call PushBottom and PopBottom; any number of
// other goroutines may call Steal concurrently with the owner and with
// each other. The zero value is not ready to use; construct one with
// [NewDeque].
type Deque[T any] struct {
	impl      *wsdeque.Deque[T]
	ownerBusy atomic.Bool
}

// NewDeque returns an empty Deque whose backing buffer has the next power of
// two greater than or equal to capacity slots. One slot is always kept
// unoccupied, so [Deque.Capacity] reports one less than the buffer size
// (NewDeque(8) holds at most 7 elements). A non-positive capacity defaults
// to [DefaultDequeCapacity].
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = DefaultDequeCapacity
	}
	return &Deque[T]{impl: wsdeque.New[T](capacity)}
}

// PushBottom appends v to the bottom of the deque. It must only be called
// by the deque's owner goroutine. If the deque is already at capacity, v
// is silently dropped.
func (d *Deque[T]) PushBottom(v T) {
	d.enterOwner()
	defer d.exitOwner()
	d.impl.PushBottom(v)
}

// PopBottom removes and returns the element at the bottom of the deque. It
// must only be called by the deque's owner goroutine. It reports false if
// the deque was empty, or if the owner lost a race against a thief for
// the last element.
func (d *Deque[T]) PopBottom() (T, bool) {
	d.enterOwner()
	defer d.exitOwner()
	return d.impl.PopBottom()
}

// Steal removes and returns the element at the top of the deque. It may be
// called by any goroutine other than the owner, including concurrently by
// many thieves. A false result does not necessarily mean the deque was
// empty — it may also mean this call lost a race to another thief or to
// the owner, which is a legitimate and expected outcome in work-stealing,
// not an error.
func (d *Deque[T]) Steal() (T, bool) {
	return d.impl.Steal()
}

// Empty reports whether the deque had no elements at the moment of the
// read. The result may already be stale by the time the caller observes
// it.
func (d *Deque[T]) Empty() bool {
	return d.impl.Empty()
}

// Size returns the approximate number of elements in the deque at the
// moment of the read. It never exceeds Capacity.
func (d *Deque[T]) Size() int {
	return d.impl.Size()
}

// Capacity returns the maximum number of elements the deque can hold
// without dropping a push.
func (d *Deque[T]) Capacity() int {
	return d.impl.Capacity()
}

func (d *Deque[T]) enterOwner() {
	if !d.ownerBusy.CompareAndSwap(false, true) {
		panic(ErrMisusedOwner)
	}
}

func (d *Deque[T]) exitOwner() {
	d.ownerBusy.Store(false)
}
