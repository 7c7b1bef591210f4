package geom

import "github.com/Faultbox/printsim/pkg/math"

// Triangle is a face with three world-space vertices.
type Triangle [3]math.Vec3

// Bounds returns the tightest box around the three vertices.
func (t Triangle) Bounds() AABB {
	return FromPoints(t[0], t[1], t[2])
}

// Center returns the center of the triangle's bounding box.
func (t Triangle) Center() math.Vec3 {
	return t.Bounds().Center()
}

// Normal returns the unit face normal for counter-clockwise winding.
// Degenerate triangles give the zero vector.
func (t Triangle) Normal() math.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
}
