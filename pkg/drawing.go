// Package bezierdraw turns SVG paths into Bezier control polygons.
package bezierdraw

import (
	"fmt"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/gcb"
)

// Segment is a single path segment with its control polygon.
type Segment struct {
	Kind   SegmentKind
	Points bezier.Polygon
}

// Drawing is a list of path segments read from SVG.
type Drawing struct {
	scale    float64
	segments []Segment
}

func NewDrawing() *Drawing {
	return &Drawing{
		scale: 1.0,
	}
}

// Scale sets scale applied to all points.
func (d *Drawing) Scale(scale float64) *Drawing {
	d.scale = scale
	return d
}

// Segments returns (scaled) control polygons of all segments.
func (d *Drawing) Segments() []Segment {
	result := make([]Segment, len(d.segments))
	for i, s := range d.segments {
		result[i] = Segment{Kind: s.Kind, Points: make(bezier.Polygon, len(s.Points))}
		for j, p := range s.Points {
			result[i].Points[j] = p.Mul(d.scale)
		}
	}

	return result
}

// Vertices returns on-curve points of the drawing in order.
// Control points of curves are skipped.
func (d *Drawing) Vertices() bezier.Polygon {
	var result bezier.Polygon

	for _, s := range d.Segments() {
		first, last := s.Points[0], s.Points[len(s.Points)-1]
		if len(result) == 0 || result[len(result)-1] != first {
			result = append(result, first)
		}

		result = append(result, last)
	}

	return result
}

// GCode draws every segment sampled with n points per segment.
func (d *Drawing) GCode(builder *gcb.GCodeBuilder, n int) error {
	builder.Comment("Drawing PATHS from SVG")

	for i, s := range d.Segments() {
		samples := n
		if s.Kind == SegmentLine {
			samples = 2
		}

		if err := builder.DrawBezier(samples, gcb.FromCurve(s.Points...)...); err != nil {
			return fmt.Errorf("segment %d (%v): %w", i, s.Kind, err)
		}
	}

	return nil
}

func tuple(t *svg.Tuple) bezier.Point {
	return bezier.Pt(t[0], t[1])
}

// collect reads drawing instructions until the instructions channel is closed.
func collect(instructions <-chan *svg.DrawingInstruction, errs <-chan error) ([]Segment, error) {
	var (
		result         []Segment
		current, start bezier.Point
	)

	for {
		select {
		case cmd := <-instructions:
			if cmd == nil {
				return result, nil
			}

			switch cmd.Kind {
			case svg.MoveInstruction:
				current = tuple(cmd.M)
				start = current
			case svg.LineInstruction:
				next := tuple(cmd.M)
				result = append(result, Segment{SegmentLine, bezier.Polygon{current, next}})
				current = next
			case svg.CurveInstruction:
				next := tuple(cmd.CurvePoints.T)
				result = append(result, Segment{SegmentCubic, bezier.Polygon{
					current,
					tuple(cmd.CurvePoints.C1),
					tuple(cmd.CurvePoints.C2),
					next,
				}})
				current = next
			case svg.CloseInstruction:
				if current != start {
					result = append(result, Segment{SegmentLine, bezier.Polygon{current, start}})
				}

				current = start
			case svg.CircleInstruction:
				glg.Warn("Circle not implemented")
			case svg.PaintInstruction:
				// style only
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("cannot read drawing instructions: %w", err)
			}
		}
	}
}
