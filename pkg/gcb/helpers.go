package gcb

import "github.com/gucio321/bezierdraw/pkg/bezier"

// BetterPoint is image.Point but better
type BetterPoint[PointType ~float64] struct {
	X, Y PointType
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X + other.X, b.Y + other.Y}
}

func (b BetterPoint[T]) Mul(scalar T) BetterPoint[T] {
	return BetterPoint[T]{b.X * scalar, b.Y * scalar}
}

func BetterPt[T ~float64](x, y T) BetterPoint[T] {
	return BetterPoint[T]{x, y}
}

func Redefine[T2, T1 ~float64](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}

// FromCurve converts curve samples to drawing positions.
func FromCurve(points ...bezier.Point) []BetterPoint[AbsolutePos] {
	result := make([]BetterPoint[AbsolutePos], len(points))
	for i, p := range points {
		result[i] = BetterPt(AbsolutePos(p.X), AbsolutePos(p.Y))
	}

	return result
}

// ToCurve is the inverse of FromCurve.
func ToCurve[T ~float64](points ...BetterPoint[T]) bezier.Polygon {
	result := make(bezier.Polygon, len(points))
	for i, p := range points {
		result[i] = bezier.Pt(float64(p.X), float64(p.Y))
	}

	return result
}
