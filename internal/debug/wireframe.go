// Package debug turns octree nodes, voxel cells and keyframe paths into
// colored line lists for overlay rendering.
package debug

import (
	"github.com/Faultbox/printsim/internal/colors"
	"github.com/Faultbox/printsim/internal/octree"
	"github.com/Faultbox/printsim/internal/voxel"
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// BoxVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxVertexCount = 24

// BoxVertices creates line vertices for a wireframe box, expanded by padding
// on all sides. Format: [x, y, z] per vertex.
func BoxVertices(box geom.AABB, padding float32) []float32 {
	lo := box.Min.Sub(math.Splat(padding))
	hi := box.Max.Add(math.Splat(padding))
	minX, minY, minZ := lo.X, lo.Y, lo.Z
	maxX, maxY, maxZ := hi.X, hi.Y, hi.Z

	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// Lines is a line list with one RGB color per vertex.
type Lines struct {
	Positions []float32
	Colors    []float32
}

// VertexCount returns the number of line vertices.
func (l *Lines) VertexCount() int {
	return len(l.Positions) / 3
}

// AddBox appends a box wireframe in a single color.
func (l *Lines) AddBox(box geom.AABB, padding float32, c colors.Color) {
	l.Positions = append(l.Positions, BoxVertices(box, padding)...)
	l.addColor(c, BoxVertexCount)
}

// AddSegment appends one line segment.
func (l *Lines) AddSegment(a, b math.Vec3, c colors.Color) {
	l.Positions = append(l.Positions, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	l.addColor(c, 2)
}

func (l *Lines) addColor(c colors.Color, n int) {
	rgb := c.RGBArray()
	for i := 0; i < n; i++ {
		l.Colors = append(l.Colors, rgb[:]...)
	}
}

// OctreeLines outlines every node, colored by depth.
func OctreeLines(tree *octree.Octree) *Lines {
	nodes := tree.Nodes()
	lines := &Lines{
		Positions: make([]float32, 0, len(nodes)*BoxVertexCount*3),
		Colors:    make([]float32, 0, len(nodes)*BoxVertexCount*3),
	}
	for _, n := range nodes {
		lines.AddBox(n.Bounds, 0, octree.DepthColor(n.Depth))
	}
	return lines
}

// VoxelLines outlines every occupied cell with its heatmap color.
func VoxelLines(grid *voxel.Grid) *Lines {
	stats := grid.Stats()
	lines := &Lines{}
	for _, i := range grid.Occupied() {
		lines.AddBox(grid.CellBounds(i), 0, voxel.CellColor(grid.Cells[i], stats))
	}
	return lines
}

// PathLines draws the keyframe loop, including the closing segment.
func PathLines(keyframes []math.Vec3, c colors.Color) *Lines {
	lines := &Lines{}
	if len(keyframes) < 2 {
		return lines
	}
	for i := range keyframes {
		lines.AddSegment(keyframes[i], keyframes[(i+1)%len(keyframes)], c)
	}
	return lines
}
