// Package parallel runs independent tasks on a fixed number of goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// Pool runs tasks submitted with Go. Tasks must not share mutable state.
type Pool struct {
	wg     sync.WaitGroup
	work   chan func()
	cancel func()

	mu   sync.Mutex
	errs []error
}

// Start returns a pool with numWorkers goroutines. Values below 1 use GOMAXPROCS; with a single
// worker, tasks run inline in Go.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		cancel: func() {},
	}

	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.work {
					f()
				}
			})
		}

		pool.cancel = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Go submits f, blocking while every worker is busy. It must not be called after Wait.
func (p *Pool) Go(f func() error) {
	task := func() {
		if err := f(); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}

	if p.work == nil {
		task()
		return
	}
	p.work <- task
}

// Wait stops accepting tasks, waits for the submitted ones and returns their errors joined.
func (p *Pool) Wait() error {
	p.cancel()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
