package bezierdraw

import (
	"errors"
	"fmt"

	"github.com/rustyoz/svg"
)

// Parse reads SVG image and extracts control polygons of its paths.
func Parse(data []byte) (result *Drawing, err error) {
	// 0.0: initialize
	result = NewDrawing()

	// 1.0: unmarshal xml
	// 2nd arg is the element name, 3rd is the scale; scaling is done by Drawing.
	img, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("cannot parse svg: %w", err)
	}

	// 2.0: read drawing instructions
	instructions, errs := img.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return nil, errors.New("nil drawing instructions or errors channel")
	}

	if result.segments, err = collect(instructions, errs); err != nil {
		return nil, err
	}

	// N.N: return
	return result, nil
}
