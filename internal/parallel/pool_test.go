package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Workers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 3, 3},
		{"zero", 0, runtime.GOMAXPROCS(0)},
		{"negative", -2, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.workers)
			defer p.Close()
			if got := p.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPool_RunAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var counter atomic.Int64
	seen := make([]bool, 100)
	jobs := make([]Job, len(seen))
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			counter.Add(1)
			seen[i] = true
			return nil
		}
	}

	if err := p.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if counter.Load() != 100 {
		t.Errorf("ran %d jobs, want 100", counter.Load())
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("job %d did not run", i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	if err := p.Run(context.Background(), nil); err != nil {
		t.Errorf("Run(nil) error = %v", err)
	}
}

func TestPool_RunJoinsErrors(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	errA := errors.New("a")
	errB := errors.New("b")
	jobs := []Job{
		func(context.Context) error { return errA },
		func(context.Context) error { return nil },
		func(context.Context) error { return errB },
	}

	err := p.Run(context.Background(), jobs)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Run() error = %v, want both job errors", err)
	}
}

func TestPool_RunCancelled(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int64
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			ran.Add(1)
			return nil
		}
	}

	err := p.Run(ctx, jobs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("%d jobs ran after cancel", ran.Load())
	}
}

func TestPool_Closed(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	err := p.Run(context.Background(), []Job{func(context.Context) error { return nil }})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Run() after Close error = %v, want ErrClosed", err)
	}
}

func TestPool_IdleWorkerTakesOtherLanes(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	// Jobs 0 and 2 share a lane. Job 0 blocks until job 2 has run, which
	// only happens if the other worker picks job 2 from that lane.
	released := make(chan struct{})
	jobs := []Job{
		func(context.Context) error {
			select {
			case <-released:
				return nil
			case <-time.After(5 * time.Second):
				return errors.New("job 2 never ran")
			}
		},
		func(context.Context) error { return nil },
		func(context.Context) error {
			close(released)
			return nil
		},
	}

	if err := p.Run(context.Background(), jobs); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
