package metaball

// Canvas is the drawing surface a Result renders onto. Hosts implement it
// with their toolkit's fill primitives; the render package ships software
// implementations.
type Canvas interface {
	// FillCircle fills a circle. Circles with a zero radius draw nothing.
	FillCircle(c Circle)

	// FillPath fills a closed path with the non-zero winding rule.
	FillPath(p *Path)
}

// Result is the scene produced by Compute for one animation frame.
// It is one of TwoCircles or FusedBlob.
type Result interface {
	// Circles returns the origin and destination circles.
	Circles() (origin, destination Circle)

	// Progress returns the clamped interpolation fraction of the frame.
	Progress() float64

	// Draw issues the frame's draw primitives to c in order: origin circle,
	// destination circle, then the blob path when there is one.
	Draw(c Canvas)

	isResult()
}

// TwoCircles is the degenerate result: both circles are drawn independently
// with no connecting path.
type TwoCircles struct {
	Origin      Circle
	Destination Circle
	T           float64
}

func (TwoCircles) isResult() {}

// Circles implements Result.
func (r TwoCircles) Circles() (origin, destination Circle) {
	return r.Origin, r.Destination
}

// Progress implements Result.
func (r TwoCircles) Progress() float64 {
	return r.T
}

// Draw implements Result.
func (r TwoCircles) Draw(c Canvas) {
	c.FillCircle(r.Origin)
	c.FillCircle(r.Destination)
}

// FusedBlob is both circles plus the closed path that fuses them into one
// liquid shape.
type FusedBlob struct {
	Origin      Circle
	Destination Circle
	Path        *Path
	T           float64
}

func (FusedBlob) isResult() {}

// Circles implements Result.
func (r FusedBlob) Circles() (origin, destination Circle) {
	return r.Origin, r.Destination
}

// Progress implements Result.
func (r FusedBlob) Progress() float64 {
	return r.T
}

// Draw implements Result.
func (r FusedBlob) Draw(c Canvas) {
	c.FillCircle(r.Origin)
	c.FillCircle(r.Destination)
	c.FillPath(r.Path)
}
