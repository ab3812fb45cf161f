package gcb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

const delta = 1e-6

func assertStroke(t *testing.T, expected []BetterPoint[AbsolutePos], got []BetterPoint[AbsolutePos]) {
	t.Helper()

	require.Len(t, got, len(expected))
	for i := range expected {
		assert.InDelta(t, float64(expected[i].X), float64(got[i].X), delta, "point %d", i)
		assert.InDelta(t, float64(expected[i].Y), float64(got[i].Y), delta, "point %d", i)
	}
}

func newBuilder(t *testing.T) *GCodeBuilder {
	t.Helper()

	b, err := NewGCodeBuilder()
	require.NoError(t, err)

	return b
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		comments bool
		expected string
	}{
		{"move", Command{Code: G0, Args: []Arg{{"X", 1.5}, {"Y", -2}}, LineComment: "hi"}, true, "G0 X1.5 Y-2 ; hi"},
		{"move without comments", Command{Code: G0, Args: []Arg{{"X", 1.5}, {"Y", -2}}, LineComment: "hi"}, false, "G0 X1.5 Y-2"},
		{"bare code", Command{Code: G91}, true, "G91"},
		{"comment", Command{LineComment: "hello"}, true, "; hello"},
		{"empty comment", Command{}, true, ";"},
		{"comment disabled", Command{LineComment: "hello"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.String(tt.comments))
		})
	}
}

func TestUpDown(t *testing.T) {
	b := newBuilder(t)

	assert.ErrorIs(t, b.Up(), ErrCantChangeDrawingState)
	require.NoError(t, b.Down())
	assert.True(t, b.IsDrawing())
	assert.ErrorIs(t, b.Down(), ErrCantChangeDrawingState)
	require.NoError(t, b.Up())
	assert.False(t, b.IsDrawing())
}

func TestMove(t *testing.T) {
	b := newBuilder(t)

	require.NoError(t, b.Move(BetterPt[AbsolutePos](10, 20)))
	assert.Equal(t, BetterPt[AbsolutePos](10, 20), b.Current())

	require.NoError(t, b.Move(BetterPt[AbsolutePos](5, 5)))
	assert.Equal(t, BetterPt[AbsolutePos](5, 5), b.Current())

	cmds := b.Commands()
	require.Len(t, cmds, 2)

	x, ok := cmds[1].Arg("X")
	require.True(t, ok)
	assert.Equal(t, RelativePos(-5), x)

	err := b.Move(BetterPt[AbsolutePos](-1, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Len(t, b.Commands(), 2)
}

func TestDrawLinesOutOfBounds(t *testing.T) {
	b := newBuilder(t)

	err := b.DrawLines(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](100, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Empty(t, b.Commands())
	assert.False(t, b.IsDrawing())

	assert.ErrorIs(t, b.DrawLines(), ErrEmptyPath)
}

func TestDrawCurveRoundTrip(t *testing.T) {
	display, err := workspace.Default()
	require.NoError(t, err)

	b := newBuilder(t).Fit(display)

	samples, err := bezier.Sample(bezier.Polygon{{X: -10, Y: -10}, {X: 0, Y: 10}, {X: 10, Y: -10}}, 21)
	require.NoError(t, err)
	require.NoError(t, b.DrawCurve(samples))

	// 20x20 display fits 80x80 printer area with scale 4
	expected := make([]BetterPoint[AbsolutePos], len(samples))
	for i, p := range samples {
		expected[i] = BetterPt(AbsolutePos((p.X+10)*4), AbsolutePos((p.Y+10)*4))
	}

	strokes := b.Strokes()
	require.Len(t, strokes, 1)
	assertStroke(t, FromCurve(samples...), strokes[0])

	parsed, err := NewGCodeBuilderFromGCode([]byte(b.String()))
	require.NoError(t, err)

	strokes = parsed.Strokes()
	require.Len(t, strokes, 1)
	assertStroke(t, expected, strokes[0])
}

func TestDrawBezier(t *testing.T) {
	b := newBuilder(t)

	require.NoError(t, b.DrawBezier(3,
		BetterPt[AbsolutePos](0, 0),
		BetterPt[AbsolutePos](10, 20),
		BetterPt[AbsolutePos](20, 0),
	))

	strokes := b.Strokes()
	require.Len(t, strokes, 1)
	assertStroke(t, []BetterPoint[AbsolutePos]{{0, 0}, {10, 10}, {20, 0}}, strokes[0])

	assert.ErrorIs(t, b.DrawBezier(10), bezier.ErrInvalidDegree)
}

func TestRepeat(t *testing.T) {
	b := newBuilder(t)

	require.NoError(t, b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](10, 10)))
	require.NoError(t, b.Repeat(2, 1))

	code := b.String()
	assert.Equal(t, 3, strings.Count(code, "G1 Z-20"))
	assert.Equal(t, 2, strings.Count(code, "G0 Z-1"))
	assert.Equal(t, 2, strings.Count(code, "\n;\n"), "repetitions are separated")

	strokes := b.Strokes()
	require.Len(t, strokes, 3)

	for _, s := range strokes {
		assertStroke(t, []BetterPoint[AbsolutePos]{{0, 0}, {10, 10}}, s)
	}
}

func TestSetDepth(t *testing.T) {
	b := newBuilder(t).SetDepth(3.5)
	require.NoError(t, b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 1)))

	code := b.String()
	assert.Contains(t, code, "G1 Z-3.5 ; start drawing\n")
	assert.Contains(t, code, "G1 Z3.5 ; stop drawing\n")
	assert.NotContains(t, code, "Z-20")
}

func TestCalibrate(t *testing.T) {
	b := newBuilder(t)
	require.NoError(t, b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 1)))
	assert.NotContains(t, b.String(), "Calibrate")

	b.Calibrate(7)
	require.NoError(t, b.Repeat(1, 1))

	code := b.String()
	assert.Equal(t, 1, strings.Count(code, "G0 Z-7 ; Calibrate the depth (move down)\n"))
	assert.Less(t, strings.Index(code, "G0 Z-7"), strings.Index(code, "G1 Z-20"))
	for _, cmd := range b.Commands() {
		assert.NotEqual(t, "Calibrate the depth (move down)", cmd.LineComment)
	}

	parsed, err := NewGCodeBuilderFromGCode([]byte(code))
	require.NoError(t, err)

	strokes := parsed.Strokes()
	require.Len(t, strokes, 2)
	for _, s := range strokes {
		assertStroke(t, []BetterPoint[AbsolutePos]{{0, 0}, {1, 1}}, s)
	}
}

func TestOriginAndScale(t *testing.T) {
	b := newBuilder(t).
		SetOrigin(BetterPt[AbsolutePos](-1, -2)).
		SetScale(10)

	require.NoError(t, b.Move(BetterPt[AbsolutePos](0, 0)))

	x, _ := b.Commands()[0].Arg("X")
	y, _ := b.Commands()[0].Arg("Y")
	assert.InDelta(t, 10.0, float64(x), delta)
	assert.InDelta(t, 20.0, float64(y), delta)
	assert.Equal(t, BetterPt[AbsolutePos](0, 0), b.Current())

	assert.ErrorIs(t, b.Move(BetterPt[AbsolutePos](8, 0)), ErrOutOfBounds)
}

func TestComments(t *testing.T) {
	b := newBuilder(t)
	require.NoError(t, b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 1)))

	assert.Contains(t, b.String(), "G1 Z-20 ; start drawing\n")

	b.Comments(true, true)
	assert.Contains(t, b.String(), "; start drawing\nG1 Z-20\n")

	b.Comments(false, false)
	assert.NotContains(t, b.String(), "start drawing")
	assert.Contains(t, b.String(), "G1 Z-20\n")
}

func TestNewGCodeBuilderFromGCode(t *testing.T) {
	code := `G90
G0 X80 Y80 ; ignored
G91
; hello
G1 Z-20
G0 X1 Y2
g0 x3 y-1
G1 Z20
M84 X Y Z E
`
	b, err := NewGCodeBuilderFromGCode([]byte(code))
	require.NoError(t, err)

	cmds := b.Commands()
	require.Len(t, cmds, 6)
	assert.Equal(t, "hello", cmds[0].LineComment)
	assert.Equal(t, GCode("M84"), cmds[5].Code)
	assert.Empty(t, cmds[5].Args)

	strokes := b.Strokes()
	require.Len(t, strokes, 1)
	assertStroke(t, []BetterPoint[AbsolutePos]{{0, 0}, {1, 2}, {4, 1}}, strokes[0])

	_, err = NewGCodeBuilderFromGCode([]byte("G91\nG0 Xabc\n"))
	assert.ErrorIs(t, err, ErrInvalidArg)
}
