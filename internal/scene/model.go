package scene

import (
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// Bounds returns the world-space box enclosing every mesh.
// A model without vertices gives geom.EmptyAABB.
func (m *Model) Bounds() geom.AABB {
	bounds := geom.EmptyAABB()
	for _, mesh := range m.Meshes {
		bounds = bounds.Union(mesh.Bounds())
	}
	return bounds
}

// ForEachWorldVertex calls fn for every vertex of every mesh in world space.
func (m *Model) ForEachWorldVertex(fn func(v math.Vec3)) {
	for _, mesh := range m.Meshes {
		mesh.ForEachWorldVertex(fn)
	}
}

// VertexCount returns the total number of vertices.
func (m *Model) VertexCount() int {
	total := 0
	for _, mesh := range m.Meshes {
		total += len(mesh.Positions)
	}
	return total
}

// Faces collects every world-space triangle in mesh order.
func (m *Model) Faces() []geom.Triangle {
	total := 0
	for _, mesh := range m.Meshes {
		total += mesh.FaceCount()
	}
	faces := make([]geom.Triangle, 0, total)
	for _, mesh := range m.Meshes {
		mesh.ForEachFace(func(tri geom.Triangle) {
			faces = append(faces, tri)
		})
	}
	return faces
}

// FaceBounds returns the AABB of every face, the form the octree consumes.
func (m *Model) FaceBounds() []geom.AABB {
	faces := m.Faces()
	boxes := make([]geom.AABB, len(faces))
	for i, f := range faces {
		boxes[i] = f.Bounds()
	}
	return boxes
}
