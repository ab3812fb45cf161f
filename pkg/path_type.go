package bezierdraw

// SegmentKind tells what kind of path segment a control polygon came from.
type SegmentKind int

const (
	// SegmentLine is a straight line (degree 1)
	SegmentLine SegmentKind = iota
	// SegmentCubic is a cubic Bezier curve (degree 3)
	SegmentCubic
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "line"
	case SegmentCubic:
		return "cubic"
	}

	return "unknown"
}
