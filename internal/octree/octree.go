// Package octree builds an adaptive spatial subdivision over a model's
// triangle faces for debug visualization and spatial queries.
//
// Nodes live in a flat arena and reference their children by index. The
// tree is built once with Build and is read-only afterwards.
package octree

import (
	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// TraversalMode selects the visiting order of Traverse.
type TraversalMode int

const (
	// DepthFirst visits nodes pre-order, children in index order.
	// A visitor returning true prunes the subtree of that node.
	DepthFirst TraversalMode = iota
	// BreadthFirst visits nodes level by level.
	// A visitor returning true stops the whole traversal.
	BreadthFirst
)

// String returns the mode name.
func (m TraversalMode) String() string {
	switch m {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// VisitFunc is called for each node reached by Traverse.
type VisitFunc func(id NodeID, node *Node) bool

// Octree is an arena of nodes rooted at index 0.
type Octree struct {
	nodes    []Node
	maxDepth int
}

// New creates a tree holding only a root leaf over bounds.
// A negative maxDepth is treated as 0.
func New(bounds geom.AABB, maxDepth int) *Octree {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Octree{
		nodes:    []Node{newLeaf(bounds, 0)},
		maxDepth: maxDepth,
	}
}

// Build creates a tree over bounds and inserts the face boxes in order.
func Build(bounds geom.AABB, faces []geom.AABB, maxDepth int) *Octree {
	t := New(bounds, maxDepth)
	subdivisions := 0
	for _, face := range faces {
		subdivisions += t.Insert(face)
	}

	logger.Named("octree").Debug("octree built",
		zap.Int("faces", len(faces)),
		zap.Int("nodes", t.Len()),
		zap.Int("subdivisions", subdivisions),
		zap.Int("max_depth", t.maxDepth),
		zap.Int("depth_reached", t.MaxDepthReached()))

	return t
}

// Insert refines the tree for one face and returns the number of nodes it
// subdivided. One leaf below maxDepth that intersects the face is split,
// following the branch that holds the face center when it can, then
// refinement continues inside that new subtree only. Other intersecting
// leaves are left untouched, so coverage depends on insertion order.
func (t *Octree) Insert(face geom.AABB) int {
	subdivided := 0
	start := t.Root()
	for {
		leaf := t.firstLeaf(start, face)
		if leaf == NoNode {
			return subdivided
		}
		t.subdivide(leaf)
		subdivided++
		start = leaf
	}
}

// firstLeaf finds, depth-first from start, a leaf that can still be split
// and intersects face. At each level the child holding the face center is
// tried before the others, which are tried in index order.
func (t *Octree) firstLeaf(start NodeID, face geom.AABB) NodeID {
	if !t.valid(start) {
		return NoNode
	}
	return t.descend(start, face, face.Center())
}

func (t *Octree) descend(id NodeID, face geom.AABB, center math.Vec3) NodeID {
	node := &t.nodes[id]
	if node.Depth >= t.maxDepth || !node.Bounds.Intersects(face) {
		return NoNode
	}
	if node.IsLeaf() {
		return id
	}

	children := node.Children
	preferred := -1
	for i, child := range children {
		if t.nodes[child].Bounds.Contains(center) {
			preferred = i
			if leaf := t.descend(child, face, center); leaf != NoNode {
				return leaf
			}
			break
		}
	}
	for i, child := range children {
		if i == preferred {
			continue
		}
		if leaf := t.descend(child, face, center); leaf != NoNode {
			return leaf
		}
	}
	return NoNode
}

func (t *Octree) subdivide(id NodeID) {
	parent := t.nodes[id]
	var children [ChildCount]NodeID
	for i := range children {
		children[i] = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, newLeaf(parent.Bounds.Octant(i), parent.Depth+1))
	}
	// Re-index: append may have moved the arena
	t.nodes[id].Children = children
}

// Traverse walks the subtree rooted at start.
// The node pointer passed to visit must not be retained or modified.
func (t *Octree) Traverse(visit VisitFunc, start NodeID, mode TraversalMode) {
	if !t.valid(start) {
		return
	}
	switch mode {
	case BreadthFirst:
		t.breadthFirst(visit, start)
	default:
		t.depthFirst(visit, start)
	}
}

func (t *Octree) depthFirst(visit VisitFunc, id NodeID) {
	node := &t.nodes[id]
	if visit(id, node) || node.IsLeaf() {
		return
	}
	for _, child := range node.Children {
		t.depthFirst(visit, child)
	}
}

func (t *Octree) breadthFirst(visit VisitFunc, start NodeID) {
	visited := make(map[NodeID]bool)
	queue := []NodeID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		node := &t.nodes[id]
		if visit(id, node) {
			return
		}
		if !node.IsLeaf() {
			queue = append(queue, node.Children[:]...)
		}
	}
}

func (t *Octree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Root returns the root node ID.
func (t *Octree) Root() NodeID {
	return 0
}

// Node returns a copy of the node with the given ID.
func (t *Octree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Bounds returns the root bounds.
func (t *Octree) Bounds() geom.AABB {
	return t.nodes[0].Bounds
}

// MaxDepth returns the depth limit the tree was built with.
func (t *Octree) MaxDepth() int {
	return t.maxDepth
}

// Len returns the total number of nodes.
func (t *Octree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaf nodes.
func (t *Octree) Leaves() int {
	count := 0
	for i := range t.nodes {
		if t.nodes[i].IsLeaf() {
			count++
		}
	}
	return count
}

// MaxDepthReached returns the depth of the deepest node.
func (t *Octree) MaxDepthReached() int {
	deepest := 0
	for i := range t.nodes {
		deepest = max(deepest, t.nodes[i].Depth)
	}
	return deepest
}

// Nodes returns every node's bounds and depth in depth-first order.
func (t *Octree) Nodes() []NodeInfo {
	infos := make([]NodeInfo, 0, len(t.nodes))
	t.Traverse(func(_ NodeID, node *Node) bool {
		infos = append(infos, NodeInfo{Bounds: node.Bounds, Depth: node.Depth})
		return false
	}, t.Root(), DepthFirst)
	return infos
}
