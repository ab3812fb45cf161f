package bezierdraw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gucio321/bezierdraw/pkg/bezier"
)

// ParsePoints reads a control polygon written as "x,y x,y ...".
// Points may be separated by spaces or semicolons.
func ParsePoints(s string) (bezier.Polygon, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})

	result := make(bezier.Polygon, 0, len(fields))

	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", field)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}

		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}

		result = append(result, bezier.Pt(x, y))
	}

	if len(result) == 0 {
		return nil, bezier.ErrInvalidDegree
	}

	return result, nil
}
