// Package viewer implements an ebiten window where the control polygon is
// acquired with the mouse and the resulting Bezier curve is displayed.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/bezierdraw/pkg/acquisition"
	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

var _ ebiten.Game = &Viewer{}

const (
	// DefaultWidth, DefaultHeight are the window size the viewer is designed for.
	DefaultWidth, DefaultHeight = 800, 800

	pointRadius = 4
	minScale    = 1
	zoomStep    = 0.1
)

var (
	backgroundColor = colornames.Black
	axisColor       = colornames.Dimgray
	polygonColor    = colornames.Red
	strokeColor     = colornames.Green
)

const (
	viewHelp = "scroll: zoom, Q/Esc: quit"
	help     = "left click: add point, middle click: remove last point, right click: draw curve\n" + viewHelp
)

// Viewer acquires a control polygon from mouse clicks and draws its Bezier curve.
type Viewer struct {
	scale   float64
	area    *workspace.Workspace
	samples int
	session *acquisition.Session
	curve   []bezier.Point
	strokes [][]bezier.Point
	onDone  func(bezier.Polygon, []bezier.Point)

	// readOnly ignores mouse clicks
	readOnly bool

	width, height    int
	cursorX, cursorY int
}

// NewViewer creates a viewer acquiring points inside area.
// After acquisition, the curve is sampled with samples points.
func NewViewer(area *workspace.Workspace, samples int) *Viewer {
	return &Viewer{
		scale:   1,
		area:    area,
		samples: samples,
		session: acquisition.NewSession(),
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
}

// OnDone sets a callback called once the curve is computed.
func (v *Viewer) OnDone(cb func(poly bezier.Polygon, curve []bezier.Point)) *Viewer {
	v.onDone = cb
	return v
}

// Preload finishes acquisition with the polygon given.
func (v *Viewer) Preload(poly bezier.Polygon) error {
	for _, p := range poly {
		if err := v.session.Add(p); err != nil {
			return err
		}
	}

	return v.finish()
}

// ReadOnly turns acquisition off; the viewer only displays what it was given.
func (v *Viewer) ReadOnly() *Viewer {
	v.readOnly = true
	return v
}

// Strokes sets additional polylines displayed (e.g. read from GCode).
func (v *Viewer) Strokes(strokes ...[]bezier.Point) *Viewer {
	v.strokes = strokes
	return v
}

func (v *Viewer) finish() error {
	if err := v.session.Finish(); err != nil {
		return err
	}

	curve, err := bezier.Sample(v.session.Polygon(), v.samples)
	if err != nil {
		return fmt.Errorf("cannot compute curve: %w", err)
	}

	v.curve = curve
	glg.Infof("Bezier curve of degree %d computed (%d samples)", v.session.Polygon().Degree(), len(curve))

	if v.onDone != nil {
		v.onDone(v.session.Polygon(), curve)
	}

	return nil
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * zoomStep
	if v.scale < minScale {
		v.scale = minScale
	}

	v.cursorX, v.cursorY = ebiten.CursorPosition()

	if v.readOnly || v.session.Done() {
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p := v.fromScreen(v.cursorX, v.cursorY)
		if !v.area.Contains(p) {
			glg.Warnf("point %v is outside of the workspace %s", p, v.area.Name)
			return nil
		}

		if err := v.session.Add(p); err != nil {
			glg.Warnf("cannot add point: %v", err)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		if err := v.session.Pop(); err != nil {
			glg.Warnf("cannot remove point: %v", err)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if err := v.finish(); err != nil {
			glg.Warnf("cannot finish acquisition: %v", err)
		}
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// axes
	v.line(screen, bezier.Pt(v.area.MinX, 0), bezier.Pt(v.area.MaxX, 0), axisColor)
	v.line(screen, bezier.Pt(0, v.area.MinY), bezier.Pt(0, v.area.MaxY), axisColor)

	for _, stroke := range v.strokes {
		for i := 1; i < len(stroke); i++ {
			v.line(screen, stroke[i-1], stroke[i], strokeColor)
		}
	}

	poly := v.session.Polygon()
	for i, p := range poly {
		x, y := v.toScreen(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), pointRadius, polygonColor, true)

		if i > 0 {
			x0, y0 := v.toScreen(poly[i-1])
			dashedLine(screen, x0, y0, x, y, polygonColor)
		}
	}

	for i := 1; i < len(v.curve); i++ {
		v.line(screen, v.curve[i-1], v.curve[i], GreenToRedHSV(float64(i)/float64(len(v.curve)-1)))
	}

	text := help
	if v.readOnly {
		text = viewHelp
	}

	cursor := v.fromScreen(v.cursorX, v.cursorY)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n(%.2f, %.2f) points: %d", text, cursor.X, cursor.Y, len(poly)))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (v *Viewer) line(screen *ebiten.Image, p0, p1 bezier.Point, c color.Color) {
	x0, y0 := v.toScreen(p0)
	x1, y1 := v.toScreen(p1)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
}

// toScreen maps p to the (zoomed) screen. Zoom is anchored at the cursor.
func (v *Viewer) toScreen(p bezier.Point) (x, y float64) {
	x, y = v.area.ToScreen(p, float64(v.width)*v.scale, float64(v.height)*v.scale)
	return x - (v.scale-1)*float64(v.cursorX), y - (v.scale-1)*float64(v.cursorY)
}

func (v *Viewer) fromScreen(x, y int) bezier.Point {
	return v.area.FromScreen(
		float64(x)+(v.scale-1)*float64(v.cursorX),
		float64(y)+(v.scale-1)*float64(v.cursorY),
		float64(v.width)*v.scale, float64(v.height)*v.scale,
	)
}
