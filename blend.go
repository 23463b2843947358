package metaball

import "math"

const (
	// Tension places each tangent point halfway between the arc boundary
	// and the pure tangent angle. It does not depend on the frame fraction.
	Tension = 0.5

	// HandleLenRate scales the Bezier handles relative to the circle radii.
	HandleLenRate = 2.4
)

// Input is the per-frame request: two circles and the interpolation
// fraction of the current frame.
type Input struct {
	Origin      Circle
	Destination Circle
	T           float64
}

// ComputeInput is Compute over an Input value.
func ComputeInput(in Input) Result {
	return Compute(in.Origin, in.Destination, in.T)
}

// Compute fuses origin and destination into a blob for one animation frame.
//
// When either radius is zero the result is TwoCircles. Otherwise the result
// is a FusedBlob whose path starts on the origin circle, curves to the
// destination circle, runs along it, curves back and closes:
//
//	MoveTo, CubicTo, LineTo, CubicTo, LineTo, Close
//
// Circles that are far apart still get a thin connecting path so the shape
// stays continuous as they separate. t is clamped to [0, 1] and only
// recorded in the result; the circles already carry the frame's radii.
// Negative and NaN radii are treated as zero.
//
// Compute never fails and is safe for concurrent use.
func Compute(origin, destination Circle, t float64) Result {
	origin = origin.sanitize()
	destination = destination.sanitize()
	t = clampUnit(t)

	if !origin.Visible() || !destination.Visible() {
		return TwoCircles{Origin: origin, Destination: destination, T: t}
	}

	g := solve(origin, destination)
	return FusedBlob{Origin: origin, Destination: destination, Path: g.path(), T: t}
}

// blobGeometry holds the intermediate values of one blob solve.
type blobGeometry struct {
	distance float64

	// arc1 and arc2 are the half-widths of the region each circle shares
	// with the other. Both are zero when the circles do not overlap.
	arc1, arc2 float64

	// angle1 points from origin to destination; angle2 is the tangent
	// half-angle derived from the radius difference.
	angle1, angle2 float64

	angle1a, angle1b, angle2a, angle2b float64

	p1a, p1b, p2a, p2b Point

	// Handle offsets added to the curve endpoints.
	h1, h2, h3, h4 Point
}

func solve(origin, destination Circle) blobGeometry {
	r1, r2 := origin.Radius, destination.Radius
	delta := destination.Center.Sub(origin.Center)
	d := delta.Length()

	// Ratios are taken against half the radius sum so that squaring
	// neither overflows for huge radii nor underflows for tiny ones.
	half := r1/2 + r2/2
	n1, n2, nd := r1/half/2, r2/half/2, d/half/2

	g := blobGeometry{distance: d}

	if nd < 1 {
		g.arc1 = halfAngle(n1, n2, nd)
		g.arc2 = halfAngle(n2, n1, nd)
	}

	g.angle1 = delta.Angle()
	g.angle2 = math.Pi / 2
	if d > 0 {
		g.angle2 = safeAcos((r1 - r2) / d)
	}

	v := Tension
	g.angle1a = g.angle1 + g.arc1 + (g.angle2-g.arc1)*v
	g.angle1b = g.angle1 - g.arc1 - (g.angle2-g.arc1)*v
	g.angle2a = g.angle1 + math.Pi - g.arc2 - (math.Pi-g.arc2-g.angle2)*v
	g.angle2b = g.angle1 - math.Pi + g.arc2 + (math.Pi-g.arc2-g.angle2)*v

	g.p1a = origin.Center.Add(Polar(g.angle1a, r1))
	g.p1b = origin.Center.Add(Polar(g.angle1b, r1))
	g.p2a = destination.Center.Add(Polar(g.angle2a, r2))
	g.p2b = destination.Center.Add(Polar(g.angle2b, r2))

	// Handle length follows the gap between the curve ends and shrinks
	// while the circles overlap heavily.
	minDist := math.Min(v*HandleLenRate, g.p1a.Sub(g.p2a).Length()/half/2)
	minDist *= math.Min(1, nd*2)

	handle1 := r1 * minDist
	handle2 := r2 * minDist

	const halfPi = math.Pi / 2
	g.h1 = Polar(g.angle1a-halfPi, handle1)
	g.h2 = Polar(g.angle2a+halfPi, handle2)
	g.h3 = Polar(g.angle2b-halfPi, handle2)
	g.h4 = Polar(g.angle1b+halfPi, handle1)

	return g
}

func (g *blobGeometry) path() *Path {
	c1 := g.p1a.Add(g.h1)
	c2 := g.p2a.Add(g.h2)
	c3 := g.p2b.Add(g.h3)
	c4 := g.p1b.Add(g.h4)

	p := NewPath()
	p.MoveTo(g.p1a.X, g.p1a.Y)
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, g.p2a.X, g.p2a.Y)
	p.LineTo(g.p2b.X, g.p2b.Y)
	p.CubicTo(c3.X, c3.Y, c4.X, c4.Y, g.p1b.X, g.p1b.Y)
	p.LineTo(g.p1a.X, g.p1a.Y)
	p.Close()
	return p
}

// halfAngle returns the law-of-cosines angle at the center of the circle
// with radius r, between the line to the other center and an intersection
// point of the two circles.
//
// Coincident centers (d == 0) take the limit of d approaching zero: the
// larger circle sees 0, the smaller π, and equal radii π/2. The same limit
// applies when 2*r*d underflows to zero.
func halfAngle(r, other, d float64) float64 {
	num := r*r + d*d - other*other
	den := 2 * r * d
	if den == 0 {
		switch {
		case num > 0:
			return 0
		case num < 0:
			return math.Pi
		default:
			return math.Pi / 2
		}
	}
	return safeAcos(num / den)
}

// safeAcos is math.Acos with its argument clamped to [-1, 1], so rounding
// near tangency cannot produce NaN. A NaN argument yields π/2.
func safeAcos(x float64) float64 {
	if math.IsNaN(x) {
		return math.Pi / 2
	}
	return math.Acos(clamp(x, -1, 1))
}

// clampUnit clamps t to [0, 1]. NaN maps to 0.
func clampUnit(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return clamp(t, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
