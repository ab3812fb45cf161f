package gcb

import (
	"fmt"

	"github.com/gucio321/bezierdraw/pkg/bezier"
)

// DrawBezier draws a Bezier curve defined by control points as a polyline of n samples.
func (b *GCodeBuilder) DrawBezier(n int, controls ...BetterPoint[AbsolutePos]) error {
	samples, err := bezier.Sample(ToCurve(controls...), n)
	if err != nil {
		return fmt.Errorf("cannot sample bezier curve: %w", err)
	}

	b.Commentf("Bezier curve of degree %d, %d samples", len(controls)-1, n)

	return b.DrawCurve(samples)
}

// DrawCurve draws curve samples as a polyline.
func (b *GCodeBuilder) DrawCurve(samples []bezier.Point) error {
	return b.DrawLines(FromCurve(samples...)...)
}
