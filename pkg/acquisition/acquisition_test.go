package acquisition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/bezierdraw/pkg/bezier"
)

func TestSession(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.Add(bezier.Pt(0, 0)))
	require.NoError(t, s.Add(bezier.Pt(1, 2)))
	require.NoError(t, s.Add(bezier.Pt(5, 5)))
	require.NoError(t, s.Pop())
	require.NoError(t, s.Add(bezier.Pt(2, 0)))

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Done())

	require.NoError(t, s.Finish())
	assert.True(t, s.Done())
	assert.Equal(t, bezier.Polygon{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}, s.Polygon())

	assert.ErrorIs(t, s.Add(bezier.Pt(3, 3)), ErrNotAcquiring)
	assert.ErrorIs(t, s.Pop(), ErrNotAcquiring)
	assert.ErrorIs(t, s.Finish(), ErrNotAcquiring)
	assert.Equal(t, 3, s.Len())
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession()

	assert.NoError(t, s.Pop())
	assert.ErrorIs(t, s.Finish(), ErrNoPoints)
	assert.False(t, s.Done())

	require.NoError(t, s.Add(bezier.Pt(4, 4)))
	require.NoError(t, s.Finish())

	samples, err := bezier.Sample(s.Polygon(), 5)
	require.NoError(t, err)

	for _, p := range samples {
		assert.Equal(t, bezier.Pt(4, 4), p)
	}
}

func TestSessionPolygonIsCopy(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Add(bezier.Pt(1, 1)))

	poly := s.Polygon()
	poly[0] = bezier.Pt(9, 9)

	assert.Equal(t, bezier.Polygon{{X: 1, Y: 1}}, s.Polygon())
}
