// Package menu holds the host-side state of a metaball menu bar: the item
// layout, the current selection and the in-flight transition between two
// items.
//
// A Bar turns a selection change into one [metaball.Input] per frame: the
// origin circle travels toward the destination while shrinking, and the
// destination circle grows in place. An [Animator] advances the frame
// fraction over wall-clock time and reports completion.
//
//	bar, _ := menu.NewBar(items, menu.WithPadding(4))
//	_ = bar.Select(2)
//	err := bar.Animate(ctx, menu.NewAnimator(500*time.Millisecond, 60), func(res metaball.Result) {
//	    res.Draw(canvas)
//	})
package menu
