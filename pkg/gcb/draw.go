package gcb

import (
	"fmt"
)

// moveRel relative destination x, y.
// NOTE: moveRel does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) moveRel(p BetterPoint[RelativePos]) *GCodeBuilder {
	b.currentP = b.currentP.Add(Redefine[HardwareAbsolutePos](p))

	b.PushCommand(Command{
		LineComment: fmt.Sprintf("move to %v", b.currentP),
		Code:        GCodeMove,
		Args: []Arg{
			{"X", p.X},
			{"Y", p.Y},
		},
	})

	return b
}

// Move moves to absolute position given
// NOTE: Move does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) Move(p BetterPoint[AbsolutePos]) error {
	hw, err := b.translate(p)
	if err != nil {
		return fmt.Errorf("cannot move to %v: %w", p, err)
	}

	b.moveRel(b.hwToRel(hw))

	return nil
}

// Comment writes comment to GCode.
func (b *GCodeBuilder) Comment(comment string) *GCodeBuilder {
	b.PushCommand(Command{
		LineComment: comment,
	})

	return b
}

// Commentf is Comment with fmt.Sprintf formatting.
func (b *GCodeBuilder) Commentf(format string, args ...interface{}) *GCodeBuilder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Separator writes an empty comment line.
func (b *GCodeBuilder) Separator() *GCodeBuilder {
	b.Comment("")
	return b
}

// startDrawing moves to p and puts the head down.
func (b *GCodeBuilder) startDrawing(p BetterPoint[AbsolutePos]) error {
	if err := b.Move(p); err != nil {
		return err
	}

	return b.Down()
}

// DrawLine draws a line from p0 to p1.
func (b *GCodeBuilder) DrawLine(p0, p1 BetterPoint[AbsolutePos]) error {
	return b.DrawLines(p0, p1)
}

// DrawLines draws a polyline going through all points of path.
func (b *GCodeBuilder) DrawLines(path ...BetterPoint[AbsolutePos]) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	// validate everything first, so no half-drawn path is left in the code
	for _, p := range path {
		if _, err := b.translate(p); err != nil {
			return fmt.Errorf("cannot draw path: %w", err)
		}
	}

	b.Commentf("BEGIN DrawLines(%d points)", len(path))

	if err := b.startDrawing(path[0]); err != nil {
		return fmt.Errorf("cant start drawing lines: %w", err)
	}

	for _, p := range path[1:] {
		if err := b.Move(p); err != nil {
			return err
		}
	}

	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing lines: %w", err)
	}

	b.Comment("END DrawLines")

	return nil
}
