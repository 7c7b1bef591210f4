package octree

import "github.com/Faultbox/printsim/internal/colors"

// depthPalette cycles from red through the hue wheel to magenta.
var depthPalette = [...]colors.Color{
	colors.Hex("#ff0000"),
	colors.Hex("#ff8000"),
	colors.Hex("#ffff00"),
	colors.Hex("#80ff00"),
	colors.Hex("#00ff00"),
	colors.Hex("#00ff80"),
	colors.Hex("#00ffff"),
	colors.Hex("#0080ff"),
	colors.Hex("#0000ff"),
	colors.Hex("#8000ff"),
	colors.Hex("#ff00ff"),
}

// PaletteSize is the number of distinct depth colors.
const PaletteSize = len(depthPalette)

// DepthColor returns the debug color for a node depth.
func DepthColor(depth int) colors.Color {
	i := depth % PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return depthPalette[i]
}
