// Package gcb provides a highly-abstracted way to generate GCode 2D engravings
// of sampled curves.
package gcb

import (
	"fmt"
	"math"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/bezierdraw/pkg/workspace"
)

type (
	// RelativePos is a position relative to the current position
	RelativePos float64
	// AbsolutePos describes position absolute on the drawing.
	AbsolutePos float64
	// HardwareAbsolutePos describes a coordinates on Hardware.
	// This is because our printer has an "offset" from real 0.0 that should be considered
	// (see workspace "printer").
	HardwareAbsolutePos float64
)

// PrinterWorkspace is the name of the workspace describing the printer's drawing area.
const PrinterWorkspace = "printer"

const defaultPreamble = `;; BEGIN PREAMBLE
M413 S0 ; Disable power loss recovery
M107 ; Fan off
M104 S0 ; Set target temperature
G92 E0 ; Hotend reset
G90 ; Absolute positioning

G28 X Y ; Home X and Y axes

G0 X%v Y%v F5000.0 ; Move to start position

G91 ; Relative positioning

; START OF PRINT

M204 S2000 ; Printing and travel speed in mm/s/s

;; END PREAMBLE

;; BEGIN DRAWING
`

const DefaultPostamble = `;; END DRAWING

;; BEGIN POSTAMBLE
M84 X Y Z E ; Disable ALL motors
;; END POSTAMBLE
`

const (
	BaseDepth       = 20
	DefaultHeadSize = 2
)

// GCodeBuilder allows to build GCode.
// All external API uses AbsolutePos - position on the drawing. It is mapped
// to the hardware area as area.Min + (p - origin) * scale (see Fit).
type GCodeBuilder struct {
	commands            []Command
	depth               RelativePos
	isDrawing           bool
	area                *workspace.Workspace
	calibration         RelativePos
	origin              BetterPoint[AbsolutePos]
	scale               float64
	currentP            BetterPoint[HardwareAbsolutePos]
	preamble, postamble string
	lineComments        bool
	commentsAbove       bool
}

// NewGCodeBuilder creates new GCodeBuilder drawing on the printer's area.
func NewGCodeBuilder() (*GCodeBuilder, error) {
	area, err := workspace.Get(PrinterWorkspace)
	if err != nil {
		return nil, fmt.Errorf("cannot get printer area: %w", err)
	}

	return NewGCodeBuilderFor(area), nil
}

// NewGCodeBuilderFor creates new GCodeBuilder drawing on area given.
// The head starts at the lower-left corner of area.
func NewGCodeBuilderFor(area *workspace.Workspace) *GCodeBuilder {
	return &GCodeBuilder{
		area:         area,
		currentP:     BetterPt(HardwareAbsolutePos(area.MinX), HardwareAbsolutePos(area.MinY)),
		depth:        BaseDepth,
		scale:        1,
		preamble:     fmt.Sprintf(defaultPreamble, area.MinX, area.MinY),
		postamble:    DefaultPostamble,
		lineComments: true,
	}
}

// SetDepth sets how deep the Head should go.
func (b *GCodeBuilder) SetDepth(depth RelativePos) *GCodeBuilder {
	b.depth = depth
	return b
}

// Calibrate makes the head go depth down before anything is drawn,
// e.g. to reach the surface from the start Z. 0 disables it.
func (b *GCodeBuilder) Calibrate(depth RelativePos) *GCodeBuilder {
	b.calibration = depth
	return b
}

// SetOrigin sets the drawing point placed at the lower-left corner of the area.
func (b *GCodeBuilder) SetOrigin(p BetterPoint[AbsolutePos]) *GCodeBuilder {
	b.origin = p
	return b
}

// SetScale sets how many hardware units one drawing unit is.
func (b *GCodeBuilder) SetScale(scale float64) *GCodeBuilder {
	b.scale = scale
	return b
}

// Fit sets origin and scale so that bounds fill the hardware area
// (keeping the aspect ratio).
func (b *GCodeBuilder) Fit(bounds *workspace.Workspace) *GCodeBuilder {
	return b.
		SetOrigin(BetterPt(AbsolutePos(bounds.MinX), AbsolutePos(bounds.MinY))).
		SetScale(math.Min(b.area.Width()/bounds.Width(), b.area.Height()/bounds.Height()))
}

// Comments sets how comments are written.
// lineComments enables comments at all, above places them in a separate line
// above the command instead of at the end of the line.
func (b *GCodeBuilder) Comments(lineComments, above bool) *GCodeBuilder {
	b.lineComments = lineComments
	b.commentsAbove = above

	return b
}

// PushCommand appends commands to the code.
func (b *GCodeBuilder) PushCommand(cmds ...Command) *GCodeBuilder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Commands returns a copy of commands built so far.
func (b *GCodeBuilder) Commands() []Command {
	result := make([]Command, len(b.commands))
	copy(result, b.commands)

	return result
}

// Up stops active drawing
func (b *GCodeBuilder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("%w: Up called, but not drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		LineComment: "stop drawing",
		Code:        GCodeHead,
		Args:        []Arg{{"Z", b.depth}},
	})

	b.isDrawing = false

	return nil
}

// Down starts drawing
func (b *GCodeBuilder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("%w: Down called, but already drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		LineComment: "start drawing",
		Code:        GCodeHead,
		Args:        []Arg{{"Z", -b.depth}},
	})

	b.isDrawing = true

	return nil
}

// IsDrawing reports whether the head is down.
func (b *GCodeBuilder) IsDrawing() bool {
	return b.isDrawing
}

// Current returns current position.
func (b *GCodeBuilder) Current() BetterPoint[AbsolutePos] {
	return b.toAbs(b.currentP)
}

// Repeat appends the code built so far nTimes, moving the head moveDown deeper before each repetition.
func (b *GCodeBuilder) Repeat(nTimes int, moveDown RelativePos) error {
	if b.isDrawing {
		return fmt.Errorf("%w: cannot repeat while drawing", ErrCantChangeDrawingState)
	}

	start := BetterPt(HardwareAbsolutePos(b.area.MinX), HardwareAbsolutePos(b.area.MinY))
	b.moveRel(b.hwToRel(start))

	cmds := b.Commands()
	for i := 0; i < nTimes; i++ {
		b.Separator().PushCommand(Command{
			LineComment: "Move down and repeat the previous sequence.",
			Code:        GCodeMove,
			Args:        []Arg{{"Z", -moveDown}},
		})

		b.PushCommand(cmds...)
	}

	return nil
}

// String returns built GCode.
func (b *GCodeBuilder) String() string {
	cmds := b.commands
	if b.calibration != 0 {
		cmds = append([]Command{{
			LineComment: "Calibrate the depth (move down)",
			Code:        GCodeMove,
			Args:        []Arg{{"Z", -b.calibration}},
		}}, cmds...)
	}

	var sb strings.Builder
	for _, cmd := range cmds {
		switch {
		case cmd.Code == "":
			if line := cmd.String(b.lineComments); line != "" {
				sb.WriteString(line + "\n")
			}
		case b.commentsAbove && b.lineComments && cmd.LineComment != "":
			sb.WriteString("; " + cmd.LineComment + "\n")
			sb.WriteString(cmd.String(false) + "\n")
		default:
			sb.WriteString(cmd.String(b.lineComments) + "\n")
		}
	}

	return fmt.Sprintf("%s\n%s\n%s", b.preamble, sb.String(), b.postamble)
}

// Dump logs the code built so far.
func (b *GCodeBuilder) Dump() {
	for i, cmd := range b.commands {
		glg.Debugf("%4d: %s", i, cmd.String(true))
	}
}

func (b *GCodeBuilder) toAbs(p BetterPoint[HardwareAbsolutePos]) BetterPoint[AbsolutePos] {
	return BetterPoint[AbsolutePos]{
		X: AbsolutePos((float64(p.X)-b.area.MinX)/b.scale) + b.origin.X,
		Y: AbsolutePos((float64(p.Y)-b.area.MinY)/b.scale) + b.origin.Y,
	}
}

// translate converts AbsolutePos to HardwareAbsolutePos
func (b *GCodeBuilder) translate(p BetterPoint[AbsolutePos]) (BetterPoint[HardwareAbsolutePos], error) {
	result := BetterPoint[HardwareAbsolutePos]{
		X: HardwareAbsolutePos(b.area.MinX + float64(p.X-b.origin.X)*b.scale),
		Y: HardwareAbsolutePos(b.area.MinY + float64(p.Y-b.origin.Y)*b.scale),
	}

	return result, b.validateHwAbs(result)
}

func (b *GCodeBuilder) hwToRel(p BetterPoint[HardwareAbsolutePos]) BetterPoint[RelativePos] {
	return Redefine[RelativePos](p.Add(b.currentP.Mul(-1)))
}

// tolerance for rounding errors of translate
const hwEpsilon = 1e-9

func (b *GCodeBuilder) validateHwAbs(p BetterPoint[HardwareAbsolutePos]) error {
	switch {
	case float64(p.X) < b.area.MinX-hwEpsilon, float64(p.X) > b.area.MaxX+hwEpsilon,
		float64(p.Y) < b.area.MinY-hwEpsilon, float64(p.Y) > b.area.MaxY+hwEpsilon:
		return fmt.Errorf("%w: (%v, %v) not in [%v, %v]x[%v, %v]",
			ErrOutOfBounds, p.X, p.Y, b.area.MinX, b.area.MaxX, b.area.MinY, b.area.MaxY)
	}

	return nil
}
