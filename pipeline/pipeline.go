// Package pipeline implements the multi-producer/multi-consumer test
// pipeline of spec.md §4.G: a coordinator goroutine dispatches candidate
// polynomials to a pool of worker goroutines, each running a check
// function, and funnels (candidate, result) pairs to a single callback
// that decides when the search should stop.
//
// There are no ordering guarantees on the callback stream (spec.md §4.G).
// The only cancellation signal is the callback returning true; there is no
// timeout and no external interrupt.
package pipeline

import (
	"runtime"
	"sync"

	"gfsearch/gf"
)

// Result is the outcome a CheckFunc reports for one candidate.
type Result struct {
	Irreducible bool
	Primitive   bool
}

// InputFunc returns the next candidate from an endless (lazy) stream.
type InputFunc func() gf.Poly

// CheckFunc evaluates one candidate and reports its result.
type CheckFunc func(gf.Poly) Result

// CallbackFunc is invoked with each (candidate, result) pair. It returns
// true when the search should stop.
type CallbackFunc func(gf.Poly, Result) bool

// Pipeline dispatches a stream of candidates across worker goroutines.
type Pipeline struct {
	workers int
}

// New constructs a pipeline with n worker goroutines. A negative n selects
// the default of max(0, runtime.NumCPU()-1) — the coordinator goroutine
// is counted against one core. n of 0 or 1 is a degenerate, workerless
// mode: Run calls input/check/callback in sequence on the caller's own
// goroutine.
func New(n int) *Pipeline {
	if n < 0 {
		n = defaultWorkerCount()
	}
	return &Pipeline{workers: n}
}

func defaultWorkerCount() int {
	n := runtime.NumCPU() - 1
	if n < 0 {
		n = 0
	}
	return n
}

// worker holds the per-worker state machine of spec.md §5: a private
// mutex/condvar guarding (input, result, busy flag, terminate flag). The
// check function is called with no lock held.
type worker struct {
	mu        sync.Mutex
	cond      *sync.Cond
	check     CheckFunc
	input     gf.Poly
	result    Result
	busy      bool
	terminate bool
}

func newWorker(check CheckFunc) *worker {
	w := &worker{check: check}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// loop is the worker goroutine body. It waits on its private condvar
// while idle, runs check while Running, and exits when terminate is set.
// The busy->idle transition is published to the shared condvar without
// holding the private mutex, so no lock is ever held by two goroutines at
// once.
func (w *worker) loop(wg *sync.WaitGroup, sharedMu *sync.Mutex, sharedCond *sync.Cond) {
	defer wg.Done()
	w.mu.Lock()
	for {
		for !w.busy && !w.terminate {
			w.cond.Wait()
		}
		if w.terminate {
			w.mu.Unlock()
			return
		}
		input := w.input
		check := w.check
		w.mu.Unlock()

		result := check(input)

		w.mu.Lock()
		w.result = result
		w.busy = false
		w.mu.Unlock()

		sharedMu.Lock()
		sharedCond.Signal()
		sharedMu.Unlock()

		w.mu.Lock()
	}
}

func (w *worker) isIdle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy
}

func (w *worker) isBusy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

func (w *worker) snapshot() (gf.Poly, Result) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input, w.result
}

func (w *worker) assign(c gf.Poly) {
	w.mu.Lock()
	w.input = c
	w.busy = true
	w.mu.Unlock()
	w.cond.Signal()
}

func (w *worker) signalTerminate() {
	w.mu.Lock()
	w.terminate = true
	w.mu.Unlock()
	w.cond.Signal()
}

func anyIdle(workers []*worker) bool {
	for _, w := range workers {
		if w.isIdle() {
			return true
		}
	}
	return false
}

func anyBusy(workers []*worker) bool {
	for _, w := range workers {
		if w.isBusy() {
			return true
		}
	}
	return false
}

// Run dispatches candidates drawn from input to check across the
// pipeline's workers and feeds every (candidate, result) pair to callback
// until callback returns true, per spec.md §4.G's coordinator loop:
//
//  1. Seed every worker with an initial input.
//  2. Wait until at least one worker is idle.
//  3. For every idle worker, call callback(its input, its result); stop
//     dispatching on the first true, otherwise hand it a fresh input.
//  4. Once stop is signaled, wait for every still-running worker to reach
//     idle.
//  5. If strict is false, invoke callback once more on every worker that
//     still holds an unconsumed (input, result) pair — the "drain the
//     in-flight work" mode.
//  6. Terminate and join every worker.
func (pl *Pipeline) Run(input InputFunc, check CheckFunc, callback CallbackFunc, strict bool) {
	if pl.workers <= 1 {
		for {
			c := input()
			r := check(c)
			if callback(c, r) {
				return
			}
		}
	}

	workers := make([]*worker, pl.workers)
	var sharedMu sync.Mutex
	sharedCond := sync.NewCond(&sharedMu)
	var wg sync.WaitGroup

	for i := range workers {
		w := newWorker(check)
		workers[i] = w
		wg.Add(1)
		go w.loop(&wg, &sharedMu, sharedCond)
	}

	for _, w := range workers {
		w.assign(input())
	}

	var stoppedWorker *worker
	stopped := false
	for !stopped {
		sharedMu.Lock()
		for !anyIdle(workers) {
			sharedCond.Wait()
		}
		sharedMu.Unlock()

		for _, w := range workers {
			if !w.isIdle() {
				continue
			}
			in, res := w.snapshot()
			if callback(in, res) {
				stopped = true
				stoppedWorker = w
				break
			}
			w.assign(input())
		}
	}

	sharedMu.Lock()
	for anyBusy(workers) {
		sharedCond.Wait()
	}
	sharedMu.Unlock()

	if !strict {
		for _, w := range workers {
			if w == stoppedWorker {
				continue
			}
			in, res := w.snapshot()
			callback(in, res)
		}
	}

	for _, w := range workers {
		w.signalTerminate()
	}
	wg.Wait()
}
