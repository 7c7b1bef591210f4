package voxel

import (
	"github.com/Faultbox/printsim/internal/colors"
	"github.com/Faultbox/printsim/internal/scene"
	"github.com/Faultbox/printsim/pkg/math"
)

// Hue maps a normalized density to a hue in degrees: 0 is blue (240),
// 1 is red (0).
func Hue(t float32) float32 {
	return (1 - math.Clamp(t, 0, 1)) * 240
}

// HeatColor returns the fully saturated heatmap color for t in [0, 1].
func HeatColor(t float32) colors.Color {
	return colors.HSL(Hue(t), 1, 0.5)
}

// CellColor colors a cell relative to the grid maximum. Empty cells are blue.
func CellColor(value uint32, stats Stats) colors.Color {
	if value == 0 || stats.Max == 0 {
		return colors.Blue
	}
	return HeatColor(float32(value) / float32(stats.Max))
}

// VertexColors returns one heatmap color per world vertex of model, in
// mesh then vertex order. Values are normalized between the grid's
// non-zero min and max.
func VertexColors(model *scene.Model, g *Grid) []colors.Color {
	stats := g.Stats()
	lo := float32(stats.Min)
	hi := max(1, float32(stats.Max))
	denom := max(1e-6, hi-lo)

	out := make([]colors.Color, 0, model.VertexCount())
	model.ForEachWorldVertex(func(v math.Vec3) {
		value := g.Value(v)
		var t float32
		if value > 0 {
			t = math.Clamp((float32(value)-lo)/denom, 0, 1)
		}
		out = append(out, HeatColor(t))
	})
	return out
}
