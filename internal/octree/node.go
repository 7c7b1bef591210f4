package octree

import "github.com/Faultbox/printsim/pkg/geom"

// NodeID indexes a node in the octree arena.
type NodeID int32

// NoNode marks a missing child.
const NoNode NodeID = -1

// ChildCount is the number of children of a subdivided node.
const ChildCount = 8

// Node is a single cell of the tree.
type Node struct {
	Bounds   geom.AABB
	Depth    int
	Children [ChildCount]NodeID
}

// Key identifies a node by the center of its bounds. Centers are unique
// within a tree because every level halves the parent extent.
type Key [3]float32

func newLeaf(bounds geom.AABB, depth int) Node {
	n := Node{Bounds: bounds, Depth: depth}
	for i := range n.Children {
		n.Children[i] = NoNode
	}
	return n
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Children[0] == NoNode
}

// Key returns the node identity derived from its center.
func (n *Node) Key() Key {
	return Key(n.Bounds.Center().Array())
}

// NodeInfo is the flattened form of a node used for box rendering.
type NodeInfo struct {
	Bounds geom.AABB
	Depth  int
}
