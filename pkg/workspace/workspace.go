// Package workspace describes rectangular working areas: where points may be
// acquired, how they are mapped to the screen and where a plotter may move.
package workspace

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gucio321/bezierdraw/pkg/bezier"
)

// DefaultName is the name of the workspace used when none is given.
const DefaultName = "default"

//go:embed workspaces.json
var workspaces []byte

// ErrUnknownWorkspace is returned by Get when there is no workspace with the given name.
var ErrUnknownWorkspace = errors.New("unknown workspace")

// Workspace represents our working area.
type Workspace struct {
	// MinX and MinY represent the lower-left corner
	MinX, MinY,
	// MaxX and MaxY represent the upper-right corner
	MaxX, MaxY float64

	Name        string
	Description string
}

func decodeWorkspaces() ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns all known workspaces.
func List() ([]Workspace, error) {
	return decodeWorkspaces()
}

// Get looks up workspace by its name.
func Get(name string) (*Workspace, error) {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("cannot decode workspaces: %w", err)
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkspace, name)
}

// Default returns the default workspace.
func Default() (*Workspace, error) {
	return Get(DefaultName)
}

func (w *Workspace) Width() float64 {
	return w.MaxX - w.MinX
}

func (w *Workspace) Height() float64 {
	return w.MaxY - w.MinY
}

// Contains reports whether p lies inside the workspace (borders included).
func (w *Workspace) Contains(p bezier.Point) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Y >= w.MinY && p.Y <= w.MaxY
}

// ToScreen maps p to a screen of size width x height.
// Screen Y grows downwards, so the axis is flipped.
func (w *Workspace) ToScreen(p bezier.Point, width, height float64) (x, y float64) {
	x = (p.X - w.MinX) / w.Width() * width
	y = (w.MaxY - p.Y) / w.Height() * height

	return x, y
}

// FromScreen is the inverse of ToScreen.
func (w *Workspace) FromScreen(x, y, width, height float64) bezier.Point {
	return bezier.Point{
		X: w.MinX + x/width*w.Width(),
		Y: w.MaxY - y/height*w.Height(),
	}
}
