// Package colors provides the float RGBA color type used for depth palettes
// and density heatmaps.
package colors

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Basic colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Hex parses a "#rrggbb" string. It panics on malformed input, so it is
// meant for package-level palettes.
func Hex(s string) Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic(fmt.Sprintf("colors: bad hex color %q: %v", s, err))
	}
	return RGB(r, g, b)
}

// HSL creates a color from hue in degrees, saturation and lightness in [0, 1].
func HSL(hueDeg, s, l float32) Color {
	h := math32.Mod(hueDeg/360, 1)
	if h < 0 {
		h++
	}
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		return Color{l, l, l, 1}
	}

	var hi float32
	if l <= 0.5 {
		hi = l * (1 + s)
	} else {
		hi = l + s - l*s
	}
	lo := 2*l - hi

	return Color{
		R: hueToChannel(lo, hi, h+1.0/3),
		G: hueToChannel(lo, hi, h),
		B: hueToChannel(lo, hi, h-1.0/3),
		A: 1,
	}
}

func hueToChannel(lo, hi, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return lo + (hi-lo)*6*t
	case t < 1.0/2:
		return hi
	case t < 2.0/3:
		return lo + (hi-lo)*6*(2.0/3-t)
	default:
		return lo
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// RGBArray returns the color channels without alpha, the layout of a
// per-vertex color attribute.
func (c Color) RGBArray() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ApproxEqual reports whether every channel differs by at most eps.
func (c Color) ApproxEqual(other Color, eps float32) bool {
	return math32.Abs(c.R-other.R) <= eps &&
		math32.Abs(c.G-other.G) <= eps &&
		math32.Abs(c.B-other.B) <= eps &&
		math32.Abs(c.A-other.A) <= eps
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	to8 := func(v float32) uint8 {
		return uint8(clamp01(v)*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}
