package menu

import (
	"context"
	"time"

	"github.com/gogpu/metaball"
)

// Easing maps normalized elapsed time in [0, 1] to a frame fraction.
type Easing func(float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 { return p }

// Animator advances a frame fraction from 0 to 1 over a fixed duration,
// invoking a frame callback once per tick.
//
// The fraction handed to the callback never decreases within one run, the
// first frame is always 0 and the last is exactly 1.
type Animator struct {
	duration   time.Duration
	interval   time.Duration
	easing     Easing
	onComplete func()
}

// NewAnimator creates an animator running for duration at fps frames per
// second. Non-positive fps defaults to 60.
func NewAnimator(duration time.Duration, fps int, opts ...AnimatorOption) *Animator {
	if fps <= 0 {
		fps = 60
	}
	a := &Animator{
		duration: max(duration, 0),
		interval: time.Second / time.Duration(fps),
		easing:   Linear,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Duration returns the run length.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Run blocks until the animation finishes or ctx is done. On completion it
// invokes the OnComplete callback and returns nil; on cancellation it
// returns ctx.Err() without the callback.
func (a *Animator) Run(ctx context.Context, frame func(t float64)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	last := 0.0
	frame(0)
	frames := 1

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for done := a.duration == 0; !done; {
		select {
		case <-ctx.Done():
			metaball.Logger().Debug("menu: animation cancelled", "frames", frames, "t", last)
			return ctx.Err()
		case now := <-ticker.C:
			p := 1.0
			if elapsed := now.Sub(start); elapsed < a.duration {
				p = float64(elapsed) / float64(a.duration)
			}
			if p >= 1 {
				done = true
				break
			}
			t := max(clampUnit(a.easing(p)), last)
			last = t
			frame(t)
			frames++
		}
	}

	frame(1)
	frames++
	metaball.Logger().Debug("menu: animation finished", "frames", frames, "duration", a.duration)
	if a.onComplete != nil {
		a.onComplete()
	}
	return nil
}

// Steps returns n evenly spaced fractions from 0 to 1 inclusive, for
// rendering a transition offline. n < 2 yields [1].
func Steps(n int) []float64 {
	if n < 2 {
		return []float64{1}
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / float64(n-1)
	}
	ts[n-1] = 1
	return ts
}
