package scene

import (
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// WorldVertex returns vertex i transformed to world space.
func (m *Mesh) WorldVertex(i int) math.Vec3 {
	return m.Transform.TransformVec3(m.Positions[i])
}

// ForEachWorldVertex calls fn for every vertex in world space.
func (m *Mesh) ForEachWorldVertex(fn func(v math.Vec3)) {
	for i := range m.Positions {
		fn(m.WorldVertex(i))
	}
}

// FaceCount returns the number of triangles the mesh describes.
func (m *Mesh) FaceCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// ForEachFace calls fn for every world-space triangle.
// Triangles referencing out-of-range vertices are skipped.
func (m *Mesh) ForEachFace(fn func(tri geom.Triangle)) {
	if len(m.Indices) == 0 {
		for i := 0; i+2 < len(m.Positions); i += 3 {
			fn(geom.Triangle{m.WorldVertex(i), m.WorldVertex(i + 1), m.WorldVertex(i + 2)})
		}
		return
	}

	n := uint32(len(m.Positions))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a >= n || b >= n || c >= n {
			continue
		}
		fn(geom.Triangle{m.WorldVertex(int(a)), m.WorldVertex(int(b)), m.WorldVertex(int(c))})
	}
}

// Bounds returns the world-space box of the mesh.
func (m *Mesh) Bounds() geom.AABB {
	bounds := geom.EmptyAABB()
	m.ForEachWorldVertex(func(v math.Vec3) {
		bounds = bounds.Expand(v)
	})
	return bounds
}

// Weld merges positions closer than epsilon and returns an indexed mesh.
// Triangles are taken from m in ForEachFace order, in local space.
func (m *Mesh) Weld(epsilon float32) *Mesh {
	if epsilon <= 0 {
		epsilon = DefaultWeldEpsilon
	}

	// Group vertices by quantized position for O(n) lookup
	lookup := make(map[[3]int32]uint32)
	var positions []math.Vec3
	var indices []uint32

	add := func(p math.Vec3) uint32 {
		key := [3]int32{
			int32(p.X / epsilon),
			int32(p.Y / epsilon),
			int32(p.Z / epsilon),
		}
		if idx, ok := lookup[key]; ok {
			return idx
		}
		idx := uint32(len(positions))
		lookup[key] = idx
		positions = append(positions, p)
		return idx
	}

	local := &Mesh{Positions: m.Positions, Indices: m.Indices, Transform: math.Identity()}
	local.ForEachFace(func(tri geom.Triangle) {
		indices = append(indices, add(tri[0]), add(tri[1]), add(tri[2]))
	})

	return &Mesh{
		Name:      m.Name,
		Positions: positions,
		Indices:   indices,
		Transform: m.Transform,
	}
}

// DefaultWeldEpsilon is used by Weld when epsilon is not positive.
const DefaultWeldEpsilon = 0.001

// FromTriangles builds a non-indexed mesh from world-space triangles.
func FromTriangles(name string, tris []geom.Triangle) *Mesh {
	positions := make([]math.Vec3, 0, len(tris)*3)
	for _, tri := range tris {
		positions = append(positions, tri[0], tri[1], tri[2])
	}
	return NewMesh(name, positions, nil)
}
