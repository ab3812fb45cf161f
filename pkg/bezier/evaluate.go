package bezier

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the default number of samples taken along a curve.
const DefaultSamples = 100

// Linspace returns m parameters evenly spaced over [0,1], both ends included.
func Linspace(m int) []float64 {
	switch {
	case m <= 0:
		return []float64{}
	case m == 1:
		return []float64{0}
	}

	ts := floats.Span(make([]float64, m), 0, 1)
	// step*(m-1) may round below 1
	ts[m-1] = 1

	return ts
}

// Evaluate returns the points of the curve described by poly for every t in ts.
// Parameters outside [0,1] are evaluated as-is (see Bernstein).
func Evaluate(poly Polygon, ts []float64) ([]Point, error) {
	if len(poly) == 0 {
		return nil, ErrInvalidDegree
	}

	xs, ys := poly.Coords()
	lnC := lnBinomialRow(poly.Degree())
	basis := make([]float64, len(poly))
	result := make([]Point, len(ts))

	for i, t := range ts {
		bernstein(basis, lnC, t)
		result[i] = Point{
			X: floats.Dot(basis, xs),
			Y: floats.Dot(basis, ys),
		}
	}

	return result, nil
}

// At returns a single point of the curve.
func At(poly Polygon, t float64) (Point, error) {
	result, err := Evaluate(poly, []float64{t})
	if err != nil {
		return Point{}, err
	}

	return result[0], nil
}

// Sample returns m points of the curve for t evenly spaced over [0,1].
// The first sample is the first control point and the last sample is the last one.
func Sample(poly Polygon, m int) ([]Point, error) {
	return Evaluate(poly, Linspace(m))
}
