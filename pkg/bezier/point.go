package bezier

// Point is a point on the plane.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Add returns the vector sum p+other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Mul returns p scaled by scalar.
func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

// Polygon is an ordered control polygon. Its degree is len-1.
type Polygon []Point

// Degree returns the degree of the curve described by the polygon (-1 if empty).
func (p Polygon) Degree() int {
	return len(p) - 1
}

// Coords splits the polygon into parallel coordinate slices.
func (p Polygon) Coords() (xs, ys []float64) {
	xs = make([]float64, len(p))
	ys = make([]float64, len(p))

	for i, pt := range p {
		xs[i], ys[i] = pt.X, pt.Y
	}

	return xs, ys
}
