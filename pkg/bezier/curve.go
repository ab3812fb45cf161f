package bezier

// Curve is an immutable Bezier curve.
// Use NewCurve; the zero value has no control points.
type Curve struct {
	poly Polygon
}

// NewCurve creates a curve from the control points given.
// Points are copied, so the caller may reuse the slice.
func NewCurve(points ...Point) (*Curve, error) {
	if len(points) == 0 {
		return nil, ErrInvalidDegree
	}

	poly := make(Polygon, len(points))
	copy(poly, points)

	return &Curve{poly: poly}, nil
}

// Degree returns degree of the curve.
func (c *Curve) Degree() int {
	return c.poly.Degree()
}

// Points returns a copy of the control polygon.
func (c *Curve) Points() Polygon {
	result := make(Polygon, len(c.poly))
	copy(result, c.poly)

	return result
}

// At returns the point of the curve at t.
// A zero Curve has no control points and gives ErrInvalidDegree.
func (c *Curve) At(t float64) (Point, error) {
	return At(c.poly, t)
}

// Evaluate returns the points of the curve for every t in ts.
func (c *Curve) Evaluate(ts []float64) ([]Point, error) {
	return Evaluate(c.poly, ts)
}

// Sample returns m points of the curve for t evenly spaced over [0,1].
func (c *Curve) Sample(m int) ([]Point, error) {
	return Sample(c.poly, m)
}
