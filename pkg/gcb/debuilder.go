package gcb

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"
)

// NewGCodeBuilderFromGCode reads GCode generated by GCodeBuilder back.
// Only the relative positioning (G91) part is kept.
func NewGCodeBuilderFromGCode(gcode []byte) (*GCodeBuilder, error) {
	result, err := NewGCodeBuilder()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(gcode), "\n")
	positioning := G90

	for i, line := range lines {
		command, comment, _ := strings.Cut(line, ";")
		comment = strings.TrimSpace(comment)

		// trim unnecessary spaces from command
		commandParts := strings.Fields(command)
		if len(commandParts) == 0 {
			if comment != "" && positioning == G91 {
				result.Comment(comment)
			}

			continue
		}

		code := GCode(strings.ToUpper(commandParts[0]))

		switch code {
		case G90:
			positioning = G90
			continue
		case G91:
			positioning = G91
			continue
		default:
			if positioning == G90 {
				glg.Warnf("Got \"%s\" command but is in Absolute Positioning mode which is not supported", code)
				continue
			}
		}

		args := make([]Arg, 0, len(commandParts)-1)
		for _, part := range commandParts[1:] {
			// bare axis letters (e.g. M84 X Y) carry no value
			if len(part) <= 1 {
				continue
			}

			arg, err := parseArg(part)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}

			args = append(args, arg)
		}

		result.PushCommand(Command{
			Code:        code,
			LineComment: comment,
			Args:        args,
		})
	}

	return result, nil
}

// Strokes replays the commands and returns every polyline drawn with the head down.
// Commands are assumed to start at the lower-left corner of the area.
func (b *GCodeBuilder) Strokes() [][]BetterPoint[AbsolutePos] {
	var (
		result    [][]BetterPoint[AbsolutePos]
		stroke    []BetterPoint[AbsolutePos]
		isDrawing bool
	)

	current := BetterPt(HardwareAbsolutePos(b.area.MinX), HardwareAbsolutePos(b.area.MinY))

	for _, cmd := range b.commands {
		switch cmd.Code {
		case GCodeHead:
			z, ok := cmd.Arg("Z")
			if !ok {
				continue
			}

			switch {
			case z < 0 && !isDrawing:
				isDrawing = true
				stroke = []BetterPoint[AbsolutePos]{b.toAbs(current)}
			case z > 0 && isDrawing:
				isDrawing = false
				result = append(result, stroke)
				stroke = nil
			}
		case GCodeMove:
			x, okX := cmd.Arg("X")
			y, okY := cmd.Arg("Y")

			if !okX && !okY {
				continue
			}

			current = current.Add(BetterPt(HardwareAbsolutePos(x), HardwareAbsolutePos(y)))
			if isDrawing {
				stroke = append(stroke, b.toAbs(current))
			}
		}
	}

	if len(stroke) > 0 {
		result = append(result, stroke)
	}

	return result
}
