// Package metaball computes liquid "metaball" blob shapes between two
// circles, the effect used to animate a selection marker sliding from one
// menu item to another.
//
// # Overview
//
// The core is a single pure function, [Compute]. Given an origin circle, a
// destination circle and the frame's interpolation fraction, it returns a
// [Result]: either [TwoCircles], when one of the circles has no radius yet,
// or a [FusedBlob] whose closed [Path] joins the circles with two cubic
// Bezier curves.
//
//	res := metaball.Compute(
//	    metaball.Circ(40, 30, 12),  // shrinking origin
//	    metaball.Circ(120, 30, 8),  // growing destination
//	    0.4,
//	)
//	res.Draw(canvas)
//
// # Hosts
//
// Compute keeps no state. The menu sub-package holds the per-transition
// host state (selected item, origin and destination snapshots, selector
// radius) and drives the fraction from 0 to 1 over wall-clock time. The
// render sub-package provides software [Canvas] implementations.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
package metaball

// Version is the current version of the library.
const Version = "0.1.0"
