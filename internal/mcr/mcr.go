// Package mcr is PAX's multicore rasterization scheduler (spec.md §4.10),
// re-expressed with goroutines and channels from
// original_source/src/helpers/pax_mcr.c's worker-thread-pool-plus-task-queue
// design — the teacher corpus has no multicore rasterizer of its own, agg_go
// runs single-threaded.
package mcr

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// queueCapacity is the bounded MPSC task queue depth (spec.md §4.10).
const queueCapacity = 32

// submitTimeout is how long Submit waits for a worker to accept a task
// before giving up on multicore entirely for this scheduler.
const submitTimeout = 100 * time.Millisecond

// Scheduler runs submitted rasterization tasks on a fixed pool of worker
// goroutines. It does no splitting of its own: a caller such as
// raster.Spans divides a draw's scanlines by parity and submits one
// share as a task.
type Scheduler struct {
	workers  int
	queue    chan func()
	wg       sync.WaitGroup
	disabled atomic.Bool
	stopOnce sync.Once
}

// NewScheduler starts a pool of n worker goroutines. n<=0 defaults to
// runtime.NumCPU().
func NewScheduler(n int) *Scheduler {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	s := &Scheduler{workers: n, queue: make(chan func(), queueCapacity)}
	for i := 0; i < n; i++ {
		go s.worker()
	}
	return s
}

func (s *Scheduler) worker() {
	for task := range s.queue {
		task()
	}
}

// Workers returns the number of worker goroutines in the pool.
func (s *Scheduler) Workers() int { return s.workers }

// Disabled reports whether a prior submission timeout caused this
// scheduler to fall back to synchronous execution for every task.
func (s *Scheduler) Disabled() bool { return s.disabled.Load() }

// Submit enqueues task for asynchronous execution on a worker. If the
// queue is full for longer than submitTimeout, the scheduler disables
// itself permanently (every future Submit runs synchronously) and task
// runs synchronously on the calling goroutine instead (spec.md §4.10's
// "auto-disable and fall back to single-core" policy).
func (s *Scheduler) Submit(task func()) {
	if s.disabled.Load() {
		task()
		return
	}
	s.wg.Add(1)
	wrapped := func() {
		defer s.wg.Done()
		task()
	}
	select {
	case s.queue <- wrapped:
	case <-time.After(submitTimeout):
		s.wg.Done()
		s.disabled.Store(true)
		task()
	}
}

// Join blocks until every task submitted so far has completed. Callers
// must Join before any operation that isn't safe to run concurrently
// with in-flight rasterization, e.g. Buffer.Destroy or a format change
// (spec.md §4.10, §5).
func (s *Scheduler) Join() { s.wg.Wait() }

// Stop joins outstanding work and shuts the worker pool down. It is
// idempotent; a stopped Scheduler accepts no further Submit calls.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.Join()
		close(s.queue)
	})
}
