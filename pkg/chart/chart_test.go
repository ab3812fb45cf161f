package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

func TestNew(t *testing.T) {
	poly := bezier.Polygon{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}
	samples, err := bezier.Sample(poly, bezier.DefaultSamples)
	require.NoError(t, err)

	bounds, err := workspace.Default()
	require.NoError(t, err)

	p, err := New(poly, samples, Options{Bounds: bounds})
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, p.Title.Text)
	assert.Equal(t, -10.0, p.X.Min)
	assert.Equal(t, 10.0, p.Y.Max)

	p, err = New(poly, nil, Options{Title: "polygon only"})
	require.NoError(t, err)
	assert.Equal(t, "polygon only", p.Title.Text)

	_, err = New(nil, samples, Options{})
	assert.ErrorIs(t, err, bezier.ErrInvalidDegree)
}

func TestSave(t *testing.T) {
	poly := bezier.Polygon{{X: -5, Y: -5}, {X: 0, Y: 8}, {X: 5, Y: -5}, {X: 8, Y: 3}}
	samples, err := bezier.Sample(poly, bezier.DefaultSamples)
	require.NoError(t, err)

	bounds, err := workspace.Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, Save(path, poly, samples, Options{Bounds: bounds}, 0, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
