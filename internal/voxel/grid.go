// Package voxel counts model vertices per cell of a uniform grid. The
// counts drive the density heatmap shown over a loaded model.
package voxel

import (
	"runtime"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/internal/scene"
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// DefaultDensity is the target number of cells along each side of a cube.
const DefaultDensity = 88

// Grid is a dense array of per-cell vertex counters.
type Grid struct {
	Bounds    geom.AABB
	VoxelSize float32
	Dims      [3]int
	Cells     []uint32
}

// New creates an empty grid over the world bounds of model.
func New(model *scene.Model, density int) *Grid {
	return NewFromBounds(model.Bounds(), density)
}

// NewFromBounds creates an empty grid over bounds so that a cube of the same
// volume would be split into roughly density cells per side.
func NewFromBounds(bounds geom.AABB, density int) *Grid {
	if bounds.IsEmpty() {
		bounds = geom.AABB{}
	}
	if density < 1 {
		density = 1
	}

	size := bounds.Size()
	volume := size.X * size.Y * size.Z
	n := float32(density)

	voxelSize := math32.Cbrt(volume / (n * n * n))
	if voxelSize <= 0 || math32.IsNaN(voxelSize) || math32.IsInf(voxelSize, 0) {
		// Flat or empty box: fall back to the longest side
		voxelSize = max(size.X, size.Y, size.Z) / n
		if voxelSize <= 0 {
			voxelSize = 1
		}
	}

	g := &Grid{Bounds: bounds, VoxelSize: voxelSize}
	for axis := 0; axis < 3; axis++ {
		g.Dims[axis] = max(1, int(math32.Ceil(size.At(axis)/voxelSize)))
	}
	g.Cells = make([]uint32, g.Dims[0]*g.Dims[1]*g.Dims[2])
	return g
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Index returns the flat index of cell (x, y, z).
func (g *Grid) Index(x, y, z int) int {
	return x + y*g.Dims[0] + z*g.Dims[0]*g.Dims[1]
}

// CellCoord is the inverse of Index.
func (g *Grid) CellCoord(i int) (x, y, z int) {
	sx, sy := g.Dims[0], g.Dims[1]
	return i % sx, (i % (sx * sy)) / sx, i / (sx * sy)
}

// CellCenter returns the world-space center of cell i.
func (g *Grid) CellCenter(i int) math.Vec3 {
	x, y, z := g.CellCoord(i)
	offset := math.Vec3{X: float32(x) + 0.5, Y: float32(y) + 0.5, Z: float32(z) + 0.5}
	return g.Bounds.Min.Add(offset.Scale(g.VoxelSize))
}

// CellBounds returns the world-space box of cell i.
func (g *Grid) CellBounds(i int) geom.AABB {
	return geom.FromCenterSize(g.CellCenter(i), math.Splat(g.VoxelSize))
}

// cellIndex maps a world point to its clamped cell.
func (g *Grid) cellIndex(p math.Vec3) int {
	rel := p.Sub(g.Bounds.Min)
	var c [3]int
	for axis := 0; axis < 3; axis++ {
		c[axis] = math.Clamp(int(math32.Floor(rel.At(axis)/g.VoxelSize)), 0, g.Dims[axis]-1)
	}
	return g.Index(c[0], c[1], c[2])
}

// Fill adds one count per world-space vertex of every mesh.
func (g *Grid) Fill(model *scene.Model) {
	model.ForEachWorldVertex(func(v math.Vec3) {
		g.Cells[g.cellIndex(v)]++
	})

	logger.Named("voxel").Debug("voxel grid filled",
		zap.Int("vertices", model.VertexCount()),
		zap.Ints("dims", g.Dims[:]),
		zap.Float32("voxel_size", g.VoxelSize))
}

// FillParallel is Fill with one task per mesh, at most workers at a time.
// Each task counts into a private array; the arrays are summed afterwards,
// so the result matches Fill exactly.
func (g *Grid) FillParallel(model *scene.Model, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	partials := make([][]uint32, len(model.Meshes))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, mesh := range model.Meshes {
		i, mesh := i, mesh
		eg.Go(func() error {
			counts := make([]uint32, len(g.Cells))
			mesh.ForEachWorldVertex(func(v math.Vec3) {
				counts[g.cellIndex(v)]++
			})
			partials[i] = counts
			return nil
		})
	}
	// Tasks never fail
	_ = eg.Wait()

	for _, counts := range partials {
		for i, c := range counts {
			g.Cells[i] += c
		}
	}

	logger.Named("voxel").Debug("voxel grid filled in parallel",
		zap.Int("meshes", len(model.Meshes)),
		zap.Int("workers", workers),
		zap.Int("vertices", model.VertexCount()))
}

// Reset zeroes every counter.
func (g *Grid) Reset() {
	clear(g.Cells)
}

// Value returns the counter of the cell containing p, or 0 when p lies
// outside the grid bounds.
func (g *Grid) Value(p math.Vec3) uint32 {
	if len(g.Cells) == 0 || !g.Bounds.Contains(p) {
		return 0
	}
	return g.Cells[g.cellIndex(p)]
}

// Sum returns the total of all counters.
func (g *Grid) Sum() uint64 {
	var total uint64
	for _, c := range g.Cells {
		total += uint64(c)
	}
	return total
}

// Occupied returns the indices of non-zero cells in ascending order, which
// is z-major, then y, then x.
func (g *Grid) Occupied() []int {
	var indices []int
	for i, c := range g.Cells {
		if c > 0 {
			indices = append(indices, i)
		}
	}
	return indices
}
