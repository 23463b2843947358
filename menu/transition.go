package menu

import "github.com/gogpu/metaball"

// Transition is the snapshot taken when the selection changes: the centers
// of the previous and the new item and the selector radius both ends share.
type Transition struct {
	From, To    int
	Origin      metaball.Point
	Destination metaball.Point
	Radius      float64
}

// Input builds the blob input for frame fraction t. The origin circle moves
// from Origin to Destination with radius R*(1-t); the destination circle
// stays at Destination with radius R*t.
func (tr Transition) Input(t float64) metaball.Input {
	t = clampUnit(t)
	return metaball.Input{
		Origin: metaball.Circle{
			Center: tr.Origin.Lerp(tr.Destination, t),
			Radius: tr.Radius * (1 - t),
		},
		Destination: metaball.Circle{
			Center: tr.Destination,
			Radius: tr.Radius * t,
		},
		T: t,
	}
}

// Frame computes the scene for frame fraction t.
func (tr Transition) Frame(t float64) metaball.Result {
	return metaball.ComputeInput(tr.Input(t))
}

func clampUnit(t float64) float64 {
	switch {
	case !(t > 0):
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
