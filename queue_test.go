// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package lockfree_test

import (
	"sync"
	"testing"

	"github.com/go-foundations/lockfree"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOSequential(t *testing.T) {
	q := lockfree.NewQueue[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, q.Size())
	require.True(t, q.Empty())

	_, ok := q.Dequeue()
	require.False(t, ok)
}

func TestQueueFrontDoesNotRemove(t *testing.T) {
	q := lockfree.NewQueue[string]()

	_, ok := q.Front()
	require.False(t, ok)

	q.Enqueue("a")
	q.Enqueue("b")

	front, ok := q.Front()
	require.True(t, ok)
	require.Equal(t, "a", front)
	require.Equal(t, 2, q.Size())
}

func TestQueueSingleProducerSingleConsumerOrder(t *testing.T) {
	q := lockfree.NewQueue[int]()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Enqueue(i)
		}
	}()

	var got []int
	for len(got) < n {
		if v, ok := q.Dequeue(); ok {
			got = append(got, v)
		}
	}
	wg.Wait()

	for i, v := range got {
		require.Equal(t, i, v, "dequeue order broke FIFO at index %d", i)
	}
	require.True(t, q.Empty())
}

func TestQueueMPMCExhaustiveConsume(t *testing.T) {
	q := lockfree.NewQueue[int]()
	const (
		numProducers    = 4
		numConsumers    = 3
		itemsPerProduce = 500
	)

	var producerWg sync.WaitGroup
	producerWg.Add(numProducers)
	for p := 0; p < numProducers; p++ {
		p := p
		go func() {
			defer producerWg.Done()
			base := p * itemsPerProduce
			for i := 0; i < itemsPerProduce; i++ {
				q.Enqueue(base + i)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		producerWg.Wait()
		close(done)
	}()

	results := make([][]int, numConsumers)
	var consumerWg sync.WaitGroup
	consumerWg.Add(numConsumers)
	for c := 0; c < numConsumers; c++ {
		c := c
		go func() {
			defer consumerWg.Done()
			for {
				if v, ok := q.Dequeue(); ok {
					results[c] = append(results[c], v)
					continue
				}
				select {
				case <-done:
					if q.Empty() {
						return
					}
				default:
				}
			}
		}()
	}
	consumerWg.Wait()

	var all []int
	seen := make(map[int]int)
	for _, rs := range results {
		for _, v := range rs {
			seen[v]++
			all = append(all, v)
		}
	}

	const total = numProducers * itemsPerProduce
	require.Len(t, all, total)
	sum := 0
	for v, count := range seen {
		require.Equal(t, 1, count, "value %d delivered more than once", v)
		sum += v
	}
	require.Equal(t, total*(total-1)/2, sum)
	require.Equal(t, 0, q.Size())
}

func TestQueueEmptyThenEnqueueDequeue(t *testing.T) {
	q := lockfree.NewQueue[int]()
	_, ok := q.Dequeue()
	require.False(t, ok)

	q.Enqueue(42)
	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 42, v)
}
