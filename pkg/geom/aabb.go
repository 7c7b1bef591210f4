// Package geom provides axis-aligned boxes, triangles and rays.
package geom

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/printsim/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, swapping components so Min <= Max.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// EmptyAABB returns an inverted box that any Expand call replaces.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: math.Splat(inf),
		Max: math.Splat(-inf),
	}
}

// FromCenterSize creates a box centered at center with the given full extent.
func FromCenterSize(center, size math.Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// FromPoints returns the tightest box around points.
// An empty input gives EmptyAABB.
func FromPoints(points ...math.Vec3) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b = b.Expand(p)
	}
	return b
}

// IsEmpty reports whether the box has never been expanded.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Expand returns the box grown to include p.
func (b AABB) Expand(p math.Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the box enclosing b and other.
func (b AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return b
	}
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the center of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Volume returns size.x * size.y * size.z.
func (b AABB) Volume() float32 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the boxes overlap; touching faces count.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Octant returns child i of the box split at its center.
// Bit 0 of i selects +X, bit 1 selects +Y and bit 2 selects +Z.
func (b AABB) Octant(i int) AABB {
	childSize := b.Size().Scale(0.5)
	dir := math.Vec3{X: -1, Y: -1, Z: -1}
	if i&1 != 0 {
		dir.X = 1
	}
	if i&2 != 0 {
		dir.Y = 1
	}
	if i&4 != 0 {
		dir.Z = 1
	}
	center := b.Center().Add(childSize.Scale(0.5).Mul(dir))
	return FromCenterSize(center, childSize)
}
