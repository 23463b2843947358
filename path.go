package metaball

import "math"

// Segment represents a single drawing segment in a Path.
type Segment interface {
	isSegment()
}

// MoveTo starts the path at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// Close closes the path back to its starting point.
type Close struct{}

func (Close) isSegment() {}

// Path is a closed outline built from MoveTo, LineTo, CubicTo and Close
// segments. The blob generator fills it with exactly one subpath.
type Path struct {
	segments []Segment
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 6),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the path by returning to the start point.
func (p *Path) Close() {
	p.segments = append(p.segments, Close{})
	p.current = p.start
}

// Segments returns the path segments in drawing order.
// The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Start returns the point of the first MoveTo.
func (p *Path) Start() Point {
	return p.start
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of all on-curve and control points as
// (min, max). Bezier curves lie inside their control polygon, so the box
// contains the filled outline. An empty path returns two zero points.
func (p *Path) Bounds() (Point, Point) {
	if len(p.segments) == 0 {
		return Point{}, Point{}
	}
	lo := Pt(math.Inf(1), math.Inf(1))
	hi := Pt(math.Inf(-1), math.Inf(-1))
	grow := func(q Point) {
		lo = Pt(math.Min(lo.X, q.X), math.Min(lo.Y, q.Y))
		hi = Pt(math.Max(hi.X, q.X), math.Max(hi.Y, q.Y))
	}
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			grow(s.Point)
		case LineTo:
			grow(s.Point)
		case CubicTo:
			grow(s.Control1)
			grow(s.Control2)
			grow(s.Point)
		}
	}
	return lo, hi
}

// IsFinite reports whether every point in the path is finite.
func (p *Path) IsFinite() bool {
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			if !s.Point.IsFinite() {
				return false
			}
		case LineTo:
			if !s.Point.IsFinite() {
				return false
			}
		case CubicTo:
			if !s.Control1.IsFinite() || !s.Control2.IsFinite() || !s.Point.IsFinite() {
				return false
			}
		}
	}
	return true
}
