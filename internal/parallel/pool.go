// Package parallel runs independent frame jobs on a fixed set of goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job renders one frame. Jobs must not share mutable state.
type Job func(ctx context.Context) error

// Pool distributes jobs across workers. Each worker owns a lane; an idle
// worker takes from the other lanes before blocking on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	lanes   []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers. Zero or negative
// uses GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &Pool{
		lanes: make([]chan func(), workers),
		done:  make(chan struct{}),
	}
	for i := range p.lanes {
		p.lanes[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for id := range workers {
		go p.work(id)
	}
	return p
}

// work runs tasks until the pool closes, then finishes its own lane.
func (p *Pool) work(id int) {
	defer p.wg.Done()
	for {
		task, ok := p.next(id)
		if !ok {
			break
		}
		task()
	}
	for {
		select {
		case task := <-p.lanes[id]:
			task()
		default:
			return
		}
	}
}

// next picks a task for worker id, scanning the lanes starting with its
// own. With every lane empty it waits on its own lane; ok is false once the
// pool is closed.
func (p *Pool) next(id int) (task func(), ok bool) {
	n := len(p.lanes)
	for i := range n {
		select {
		case task = <-p.lanes[(id+i)%n]:
			return task, true
		default:
		}
	}
	select {
	case task = <-p.lanes[id]:
		return task, true
	case <-p.done:
		return nil, false
	}
}

// Run executes jobs round-robin across the workers and waits for all of
// them. Jobs not yet started when ctx is done are skipped with ctx.Err().
// The returned error joins every job error in job order. Run must not race
// with Close.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}
	if !p.running.Load() {
		return ErrClosed
	}

	errs := make([]error, len(jobs))
	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		fn := func() {
			defer pending.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = job(ctx)
		}
		select {
		case p.lanes[i%len(p.lanes)] <- fn:
		case <-p.done:
			errs[i] = ErrClosed
			pending.Done()
		}
	}

	pending.Wait()
	return errors.Join(errs...)
}

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("parallel: pool closed")

// Close lets queued jobs finish and stops the workers. It is safe to call
// more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return len(p.lanes)
}
