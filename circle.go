package metaball

// Circle is a filled circular marker. A zero radius means the circle is not
// visible yet.
type Circle struct {
	Center Point
	Radius float64
}

// Circ is a convenience function to create a Circle.
func Circ(x, y, r float64) Circle {
	return Circle{Center: Pt(x, y), Radius: r}
}

// WithCenter returns a copy of c moved to center.
func (c Circle) WithCenter(center Point) Circle {
	c.Center = center
	return c
}

// WithRadius returns a copy of c with the given radius.
func (c Circle) WithRadius(r float64) Circle {
	c.Radius = r
	return c
}

// Visible reports whether the circle covers any area.
func (c Circle) Visible() bool {
	return c.Radius > 0
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

// sanitize maps negative and NaN radii to zero.
func (c Circle) sanitize() Circle {
	if !(c.Radius > 0) {
		c.Radius = 0
	}
	return c
}
