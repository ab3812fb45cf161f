package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const dashLength = 6

// dashedLine draws a dotted line (as matplotlib's ':' style).
func dashedLine(dst *ebiten.Image, x0, y0, x1, y1 float64, c color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}

	dx, dy := (x1-x0)/length, (y1-y0)/length
	for d := 0.0; d < length; d += 2 * dashLength {
		end := math.Min(d+dashLength, length)
		vector.StrokeLine(dst,
			float32(x0+dx*d), float32(y0+dy*d),
			float32(x0+dx*end), float32(y0+dy*end),
			1, c, true)
	}
}

// GreenToRedHSV maps v ∈ [0,1] to a color between green (0) and red (1).
// Used to show the direction of the curve parameter t.
func GreenToRedHSV(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	// Interpolate hue from 120 (green) to 0 (red)
	hue := (1.0 - v) * 120.0
	return HSVtoRGB(hue, 1.0, 1.0)
}

// HSVtoRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an RGBA color
func HSVtoRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	case h < 360:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
