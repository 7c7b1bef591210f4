// Package scene holds mesh geometry in the form the octree and voxel grid
// consume: local vertex positions, an optional triangle index buffer and a
// per-mesh world transform.
package scene

import "github.com/Faultbox/printsim/pkg/math"

// Mesh is a single piece of geometry with its own world transform.
type Mesh struct {
	Name string
	// Positions are vertex positions in mesh-local space.
	Positions []math.Vec3
	// Indices is an optional triangle list. When empty, consecutive
	// position triples form the triangles.
	Indices []uint32
	// Transform maps local positions to world space.
	Transform math.Mat4
}

// Model is a loaded scene: an ordered list of meshes.
type Model struct {
	Name   string
	Meshes []*Mesh
}

// NewMesh creates a mesh with an identity transform.
func NewMesh(name string, positions []math.Vec3, indices []uint32) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: positions,
		Indices:   indices,
		Transform: math.Identity(),
	}
}

// NewModel creates a model from meshes.
func NewModel(name string, meshes ...*Mesh) *Model {
	return &Model{Name: name, Meshes: meshes}
}
