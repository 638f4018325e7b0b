// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package backoff implements the progressive pause/yield strategy used by
// the CAS retry loops in [github.com/go-foundations/lockfree]: a short run
// of spin pauses, escalating to longer runs of spin pauses, escalating to
// a scheduler yield. Go exposes no portable CPU pause intrinsic, so spin
// stages busy-loop over a volatile-ish counter instead of issuing a real
// PAUSE/YIELD instruction; this is strictly an advisory hint and, per the
// contract of every caller in this module, establishes no happens-before
// relationship on its own.
package backoff

import (
	"runtime"
	"sync/atomic"
)

// Number of failed attempts after which Wait starts emitting more than one
// spin pause per call, and the number after which it stops spinning and
// yields the goroutine instead.
const (
	spinThreshold  = 10
	yieldThreshold = 100
)

// Backoff tracks the escalation state of a single retry loop. The zero
// value is ready to use.
type Backoff struct {
	attempts int
}

// Wait emits one stage of backoff proportional to the number of times it
// has been called since the last [Backoff.Reset], then returns. It never
// blocks indefinitely and carries no ordering guarantee of its own.
func (b *Backoff) Wait() {
	b.attempts++
	switch {
	case b.attempts <= spinThreshold:
		spin(1)
	case b.attempts <= yieldThreshold:
		spin(b.attempts - spinThreshold)
	default:
		runtime.Gosched()
	}
}

// Reset clears the escalation state, e.g. after a retry loop makes
// progress.
func (b *Backoff) Reset() {
	b.attempts = 0
}

// Attempts reports how many times Wait has been called since construction
// or the last Reset.
func (b *Backoff) Attempts() int {
	return b.attempts
}

//go:noinline
func spin(n int) {
	var counter atomic.Uint32
	for i := 0; i < n; i++ {
		counter.Add(1)
	}
}
