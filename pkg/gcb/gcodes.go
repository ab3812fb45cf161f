package gcb

// GCode represents a gcode (e.g. G0, G1, G91)
type GCode string

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// We point out only codes used in this project.
const (
	// G0 is a move command
	G0 GCode = "G0"
	// G1 is a move command too (ref does not point the difference)
	// we use it for lifting/lowering the head, so the drawing state can be read back.
	G1 GCode = "G1"
	// G90 sets absolute positioning
	G90 GCode = "G90"
	// G91 sets relative positioning
	G91 GCode = "G91"

	GCodeMove = G0
	GCodeHead = G1
)
