package bezier

import "errors"

// ErrInvalidDegree is returned when the control polygon has no points.
var ErrInvalidDegree = errors.New("invalid degree - control polygon must have at least one point")
