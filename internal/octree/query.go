package octree

import (
	"sort"

	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// LeafAt returns the deepest node containing p, or NoNode when p lies
// outside the root.
func (t *Octree) LeafAt(p math.Vec3) NodeID {
	if !t.nodes[0].Bounds.Contains(p) {
		return NoNode
	}
	id := t.Root()
	for {
		node := &t.nodes[id]
		if node.IsLeaf() {
			return id
		}
		next := NoNode
		for _, child := range node.Children {
			if t.nodes[child].Bounds.Contains(p) {
				next = child
				break
			}
		}
		if next == NoNode {
			return id
		}
		id = next
	}
}

// RayHit is a leaf crossed by a ray.
type RayHit struct {
	ID NodeID
	T  float32
}

// Raycast returns the leaves hit by ray, nearest first.
func (t *Octree) Raycast(ray geom.Ray) []RayHit {
	var hits []RayHit
	t.Traverse(func(id NodeID, node *Node) bool {
		dist, ok := ray.IntersectAABB(node.Bounds)
		if !ok {
			return true
		}
		if node.Bounds.Contains(ray.Origin) {
			dist = 0
		}
		if node.IsLeaf() {
			hits = append(hits, RayHit{ID: id, T: dist})
		}
		return false
	}, t.Root(), DepthFirst)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].T < hits[j].T
	})
	return hits
}
