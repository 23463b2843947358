package menu

// Option configures a Bar during creation.
//
// Example:
//
//	bar, err := menu.NewBar(items,
//	    menu.WithPadding(6),
//	    menu.WithOnSelect(func(i int) { log.Println("selected", i) }),
//	)
type Option func(*barOptions)

type barOptions struct {
	padding  float64
	selected int
	onSelect func(int)
}

func defaultBarOptions() barOptions {
	return barOptions{}
}

// WithPadding adds breathing space around an item's larger side when
// sizing the selector circle. Negative values are treated as zero.
func WithPadding(padding float64) Option {
	return func(o *barOptions) {
		if padding > 0 {
			o.padding = padding
		}
	}
}

// WithSelected sets the initially selected item. Defaults to 0.
func WithSelected(i int) Option {
	return func(o *barOptions) {
		o.selected = i
	}
}

// WithOnSelect registers a callback invoked with the new selection once its
// transition completes. Interrupted transitions do not invoke it.
func WithOnSelect(fn func(index int)) Option {
	return func(o *barOptions) {
		o.onSelect = fn
	}
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithEasing sets the curve mapping elapsed time to frame fraction.
// The curve must be monotonic with f(0) = 0 and f(1) = 1; Linear is the
// default.
func WithEasing(e Easing) AnimatorOption {
	return func(a *Animator) {
		if e != nil {
			a.easing = e
		}
	}
}

// WithOnComplete registers a callback invoked after the final frame.
func WithOnComplete(fn func()) AnimatorOption {
	return func(a *Animator) {
		a.onComplete = fn
	}
}
