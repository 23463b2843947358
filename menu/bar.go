package menu

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/metaball"
)

var (
	// ErrNoItems is returned by NewBar when the layout is empty.
	ErrNoItems = errors.New("menu: bar needs at least one item")

	// ErrIndexOutOfRange is returned when an item index does not exist.
	ErrIndexOutOfRange = errors.New("menu: item index out of range")
)

// Bar tracks the selection of a horizontal menu and the transition between
// the previously selected item and the new one.
//
// Bar is safe for concurrent use: the animation loop may call Frame while
// the host calls Select.
type Bar struct {
	mu       sync.Mutex
	items    []image.Rectangle
	padding  float64
	selected int
	onSelect func(int)

	// active is nil while the selector rests on an item.
	active *Transition
}

// NewBar creates a bar over the given item bounds, in layout order.
func NewBar(items []image.Rectangle, opts ...Option) (*Bar, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	o := defaultBarOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.selected < 0 || o.selected >= len(items) {
		return nil, fmt.Errorf("initial selection %d: %w", o.selected, ErrIndexOutOfRange)
	}

	return &Bar{
		items:    append([]image.Rectangle(nil), items...),
		padding:  o.padding,
		selected: o.selected,
		onSelect: o.onSelect,
	}, nil
}

// Len returns the number of items.
func (b *Bar) Len() int {
	return len(b.items)
}

// Selected returns the selected item. During a transition this is already
// the destination item.
func (b *Bar) Selected() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected
}

// Transitioning reports whether a transition is in flight.
func (b *Bar) Transitioning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active != nil
}

// Center returns the center of item i.
func (b *Bar) Center(i int) (metaball.Point, error) {
	if i < 0 || i >= len(b.items) {
		return metaball.Point{}, fmt.Errorf("center of item %d: %w", i, ErrIndexOutOfRange)
	}
	return center(b.items[i]), nil
}

// SelectorRadius returns the selector circle radius for item i: half of the
// item's larger side plus the padding.
func (b *Bar) SelectorRadius(i int) (float64, error) {
	if i < 0 || i >= len(b.items) {
		return 0, fmt.Errorf("selector radius of item %d: %w", i, ErrIndexOutOfRange)
	}
	return selectorRadius(b.items[i], b.padding), nil
}

// Select starts a transition from the current selection to item i.
// A transition already in flight is dropped without its completion
// callback and the new one starts from the item it was heading to.
// Selecting the current item replays the grow-in-place animation.
func (b *Bar) Select(i int) error {
	if i < 0 || i >= len(b.items) {
		return fmt.Errorf("select item %d: %w", i, ErrIndexOutOfRange)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	log := metaball.Logger()
	if b.active != nil {
		log.Debug("menu: transition interrupted", "from", b.active.From, "to", b.active.To)
	}

	tr := &Transition{
		From:        b.selected,
		To:          i,
		Origin:      center(b.items[b.selected]),
		Destination: center(b.items[i]),
		Radius:      selectorRadius(b.items[i], b.padding),
	}
	b.active = tr
	b.selected = i

	log.Debug("menu: transition started",
		"from", tr.From, "to", tr.To,
		"distance", tr.Origin.Distance(tr.Destination), "radius", tr.Radius)
	return nil
}

// Transition returns a copy of the in-flight transition, if any.
func (b *Bar) Transition() (Transition, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == nil {
		return Transition{}, false
	}
	return *b.active, true
}

// Frame returns the scene for frame fraction t. At rest the selector is a
// single circle on the selected item and t is ignored.
func (b *Bar) Frame(t float64) metaball.Result {
	b.mu.Lock()
	tr := b.active
	sel := b.selected
	b.mu.Unlock()

	if tr != nil {
		return tr.Frame(t)
	}

	c := center(b.items[sel])
	selector := metaball.Circle{Center: c, Radius: selectorRadius(b.items[sel], b.padding)}
	return metaball.Compute(selector, metaball.Circle{Center: c}, 1)
}

// Draw renders the scene for frame fraction t onto c.
func (b *Bar) Draw(c metaball.Canvas, t float64) {
	b.Frame(t).Draw(c)
}

// Complete finishes the in-flight transition and invokes the OnSelect
// callback with the new selection. It is a no-op at rest.
func (b *Bar) Complete() {
	b.mu.Lock()
	tr := b.active
	b.mu.Unlock()
	b.finish(tr, true)
}

// Cancel drops the in-flight transition without invoking OnSelect. The
// destination item stays selected.
func (b *Bar) Cancel() {
	b.mu.Lock()
	tr := b.active
	b.mu.Unlock()
	b.finish(tr, false)
}

// Animate plays the in-flight transition with a, passing each frame's scene
// to draw, and completes it when the animator finishes. If ctx is cancelled
// first the transition is cancelled and ctx's error returned. A transition
// replaced by Select while playing is left to its replacement.
func (b *Bar) Animate(ctx context.Context, a *Animator, draw func(metaball.Result)) error {
	b.mu.Lock()
	tr := b.active
	b.mu.Unlock()
	if tr == nil {
		return nil
	}

	err := a.Run(ctx, func(t float64) {
		draw(tr.Frame(t))
	})
	b.finish(tr, err == nil)
	return err
}

// finish ends tr if it is still the in-flight transition.
func (b *Bar) finish(tr *Transition, completed bool) {
	if tr == nil {
		return
	}

	b.mu.Lock()
	if b.active != tr {
		b.mu.Unlock()
		return
	}
	b.active = nil
	fn := b.onSelect
	b.mu.Unlock()

	log := metaball.Logger()
	if !completed {
		log.Debug("menu: transition cancelled", "from", tr.From, "to", tr.To)
		return
	}
	log.Info("menu: transition complete", "from", tr.From, "to", tr.To)
	if fn != nil {
		fn(tr.To)
	}
}

func center(r image.Rectangle) metaball.Point {
	return metaball.Pt(
		float64(r.Min.X)+float64(r.Dx())/2,
		float64(r.Min.Y)+float64(r.Dy())/2,
	)
}

func selectorRadius(r image.Rectangle, padding float64) float64 {
	return float64(max(r.Dx(), r.Dy()))/2 + math.Max(padding, 0)
}
