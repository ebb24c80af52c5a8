// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index ranges on a fixed set of goroutines that
// live as long as the Pool.
//
// It is the parallel driver behind mateval.EvaluateParallel, where the
// indices are destination columns: every range gets its own evaluator, so
// workers never share evaluation state.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	pool.ParallelFor(ncols, func(start, end int) { ... })
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. Spawning happens once in New, so a
// Pool is meant to be reused across many evaluations.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn  func()
	job *job
}

// job tracks one ParallelFor call: its barrier and the first panic raised
// by any of its ranges.
type job struct {
	wg       sync.WaitGroup
	panicked atomic.Pointer[panicValue]
}

type panicValue struct {
	v any
}

func (j *job) run(fn func()) {
	defer j.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			j.panicked.CompareAndSwap(nil, &panicValue{r})
		}
	}()
	fn()
}

// wait blocks until every range finished and re-raises a worker panic on
// the calling goroutine.
func (j *job) wait() {
	j.wg.Wait()
	if p := j.panicked.Load(); p != nil {
		panic(fmt.Sprintf("workerpool: worker panicked: %v", p.v))
	}
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS when
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.job.run(t.fn)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers once pending work is done. It is safe to call
// more than once; a closed pool runs everything on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

func (p *Pool) sequential() bool {
	return p == nil || p.closed.Load() || p.numWorkers == 1
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) for each, blocking until all return. A nil or
// closed pool calls fn(0, n) directly.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential() || n == 1 {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers

	j := &job{}
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		j.wg.Add(1)
		p.workC <- task{fn: func() { fn(start, end) }, job: j}
	}
	j.wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize through an
// atomic counter, which balances uneven per-index work. fn is called once
// per batch.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	if p.sequential() || batches == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	j := &job{}
	for range min(p.numWorkers, batches) {
		j.wg.Add(1)
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			job: j,
		}
	}
	j.wait()
}
