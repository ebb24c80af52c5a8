// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())

	var nilPool *Pool
	assert.Equal(t, 1, nilPool.NumWorkers())
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 100} {
		pool := New(4)
		hits := make([]int32, n)
		var calls atomic.Int32
		pool.ParallelFor(n, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		pool.Close()

		for i, h := range hits {
			assert.Equalf(t, int32(1), h, "n=%d index %d", n, i)
		}
		assert.LessOrEqual(t, int(calls.Load()), 4)
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	n := 37
	hits := make([]int32, n)
	var batches atomic.Int32
	pool.ParallelForBatched(n, 5, func(start, end int) {
		batches.Add(1)
		assert.LessOrEqual(t, end-start, 5)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		assert.Equalf(t, int32(1), h, "index %d", i)
	}
	assert.Equal(t, int32(8), batches.Load())
}

func TestClosedAndNilPoolsRunInline(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	var got [][2]int
	pool.ParallelFor(10, func(start, end int) { got = append(got, [2]int{start, end}) })
	assert.Equal(t, [][2]int{{0, 10}}, got)

	got = nil
	var nilPool *Pool
	nilPool.ParallelForBatched(10, 3, func(start, end int) { got = append(got, [2]int{start, end}) })
	assert.Equal(t, [][2]int{{0, 10}}, got)
}

func TestWorkerPanicReachesCaller(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Panics(t, func() {
		pool.ParallelFor(8, func(start, end int) {
			if start == 0 {
				panic("boom")
			}
		})
	})

	// The pool keeps working afterwards.
	var sum atomic.Int64
	pool.ParallelFor(8, func(start, end int) {
		for i := start; i < end; i++ {
			sum.Add(int64(i))
		}
	})
	assert.Equal(t, int64(28), sum.Load())
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float64, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
