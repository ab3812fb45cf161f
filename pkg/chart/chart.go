// Package chart renders a control polygon and its Bezier curve to an image file.
package chart

import (
	"fmt"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

const (
	DefaultTitle = "Polygon acquisition and Bezier curve"
	CurveLabel   = "Bezier curve"
	PolygonLabel = "Control polygon"

	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Options configures the chart.
type Options struct {
	Title string
	// Bounds sets axes ranges. nil means autoscale.
	Bounds *workspace.Workspace
}

func xys(points []bezier.Point) plotter.XYs {
	result := make(plotter.XYs, len(points))
	for i, p := range points {
		result[i] = plotter.XY{X: p.X, Y: p.Y}
	}

	return result
}

// New creates a plot of the control polygon (red dots joined by a dotted line)
// and the curve samples.
func New(poly bezier.Polygon, samples []bezier.Point, opts Options) (*plot.Plot, error) {
	if len(poly) == 0 {
		return nil, bezier.ErrInvalidDegree
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = DefaultTitle
	}

	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if opts.Bounds != nil {
		p.X.Min, p.X.Max = opts.Bounds.MinX, opts.Bounds.MaxX
		p.Y.Min, p.Y.Max = opts.Bounds.MinY, opts.Bounds.MaxY
	}

	polyLine, polyPoints, err := plotter.NewLinePoints(xys(poly))
	if err != nil {
		return nil, fmt.Errorf("control polygon: %w", err)
	}

	polyLine.Color = colornames.Red
	polyLine.Width = vg.Points(1)
	polyLine.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	polyPoints.Color = colornames.Red
	polyPoints.Shape = draw.CircleGlyph{}
	polyPoints.Radius = vg.Points(3)

	p.Add(polyLine, polyPoints)
	p.Legend.Add(PolygonLabel, polyLine, polyPoints)

	if len(samples) > 0 {
		curve, err := plotter.NewLine(xys(samples))
		if err != nil {
			return nil, fmt.Errorf("curve: %w", err)
		}

		curve.Color = colornames.Blue
		curve.Width = vg.Points(1.5)
		p.Add(curve)
		p.Legend.Add(CurveLabel, curve)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// Save renders the chart to path. Format is taken from the file extension (png, svg, pdf...).
// Zero width/height means defaults.
func Save(path string, poly bezier.Polygon, samples []bezier.Point, opts Options, width, height vg.Length) error {
	p, err := New(poly, samples, opts)
	if err != nil {
		return err
	}

	if width == 0 {
		width = DefaultWidth
	}

	if height == 0 {
		height = DefaultHeight
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	return nil
}
