package voxel

import (
	"testing"

	"github.com/Faultbox/printsim/internal/scene"
	"github.com/Faultbox/printsim/pkg/geom"
	"github.com/Faultbox/printsim/pkg/math"
)

// cubeModel returns the eight corners of a cube as a single mesh plus a
// second translated copy.
func cubeModel() *scene.Model {
	var corners []math.Vec3
	for i := 0; i < 8; i++ {
		corners = append(corners, math.Vec3{
			X: float32(i & 1),
			Y: float32((i >> 1) & 1),
			Z: float32((i >> 2) & 1),
		})
	}
	a := scene.NewMesh("a", corners, nil)
	b := scene.NewMesh("b", corners, nil)
	b.Transform = math.Translate(1, 1, 1)
	return scene.NewModel("cubes", a, b)
}

// densityModel spans (0,0,0)-(3,3,1.5). At density 3 the voxel size is
// cbrt(0.5) and the grid is 4x4x2, with two vertices sharing cell (1,1,1).
func densityModel() *scene.Model {
	a := scene.NewMesh("a", []math.Vec3{
		{},
		{X: 1, Y: 1, Z: 1},
		{X: 3, Y: 3, Z: 1.5},
	}, nil)
	b := scene.NewMesh("b", []math.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 2.5, Y: 2.5, Z: 0.2},
	}, nil)
	return scene.NewModel("density", a, b)
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestNewDims(t *testing.T) {
	bounds := geom.NewAABB(math.Vec3{}, math.Vec3{X: 4.5, Y: 2.5, Z: 0.8})
	g := NewFromBounds(bounds, 2)

	// cbrt(9 / 8)
	if !approx(g.VoxelSize, 1.040042) {
		t.Errorf("VoxelSize = %v, want 1.040042", g.VoxelSize)
	}
	if g.Dims != [3]int{5, 3, 1} {
		t.Errorf("Dims = %v, want [5 3 1]", g.Dims)
	}
	if g.Len() != 15 {
		t.Errorf("Len() = %d, want 15", g.Len())
	}
}

func TestNewDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  geom.AABB
		density int
		want    float32
	}{
		{"flat", geom.NewAABB(math.Vec3{}, math.Vec3{X: 4, Y: 2}), 4, 1},
		{"point", geom.NewAABB(math.Splat(3), math.Splat(3)), 10, 1},
		{"empty", geom.EmptyAABB(), 10, 1},
		{"zero density", geom.NewAABB(math.Vec3{}, math.Splat(2)), 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewFromBounds(tt.bounds, tt.density)
			if !approx(g.VoxelSize, tt.want) {
				t.Errorf("VoxelSize = %v, want %v", g.VoxelSize, tt.want)
			}
			for axis, d := range g.Dims {
				if d < 1 {
					t.Errorf("Dims[%d] = %d, want >= 1", axis, d)
				}
			}
			if len(g.Cells) != g.Dims[0]*g.Dims[1]*g.Dims[2] {
				t.Errorf("len(Cells) = %d, want %d", len(g.Cells), g.Dims[0]*g.Dims[1]*g.Dims[2])
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewFromBounds(geom.NewAABB(math.Vec3{}, math.Vec3{X: 3, Y: 4, Z: 5}), 4)
	for i := 0; i < g.Len(); i++ {
		x, y, z := g.CellCoord(i)
		if got := g.Index(x, y, z); got != i {
			t.Fatalf("Index(CellCoord(%d)) = %d", i, got)
		}
	}
}

func TestFillSumEqualsVertexCount(t *testing.T) {
	model := cubeModel()
	g := New(model, 8)
	g.Fill(model)

	if got, want := g.Sum(), uint64(model.VertexCount()); got != want {
		t.Errorf("Sum() = %d, want %d", got, want)
	}
}

func TestFillParallelMatchesFill(t *testing.T) {
	model := cubeModel()
	for _, workers := range []int{0, 1, 4} {
		serial := New(model, 5)
		serial.Fill(model)
		parallel := New(model, 5)
		parallel.FillParallel(model, workers)

		for i := range serial.Cells {
			if serial.Cells[i] != parallel.Cells[i] {
				t.Fatalf("workers=%d: cell %d = %d, want %d", workers, i, parallel.Cells[i], serial.Cells[i])
			}
		}
	}
}

func TestValue(t *testing.T) {
	model := densityModel()
	g := New(model, 3)
	g.Fill(model)

	if g.Dims != [3]int{4, 4, 2} {
		t.Fatalf("Dims = %v, want [4 4 2]", g.Dims)
	}
	if got := g.Value(math.Splat(1)); got != 2 {
		t.Errorf("Value(1,1,1) = %d, want 2", got)
	}
	if got := g.Value(math.Splat(0.1)); got != 1 {
		t.Errorf("Value(0.1,0.1,0.1) = %d, want 1", got)
	}
	if got := g.Value(math.Vec3{X: 1.5, Y: 0.1, Z: 0.1}); got != 0 {
		t.Errorf("Value of empty cell = %d, want 0", got)
	}

	outside := []math.Vec3{
		{X: -0.01, Y: 1, Z: 1},
		{X: 1, Y: 3.5, Z: 1},
		{X: 1, Y: 1, Z: 100},
	}
	for _, p := range outside {
		if got := g.Value(p); got != 0 {
			t.Errorf("Value(%v) = %d, want 0", p, got)
		}
	}
}

func TestStats(t *testing.T) {
	g := NewFromBounds(geom.NewAABB(math.Vec3{}, math.Splat(2)), 2)
	if s := g.Stats(); s != (Stats{}) {
		t.Errorf("Stats() on empty grid = %+v, want zero", s)
	}

	g.Cells[0] = 3
	g.Cells[5] = 1
	g.Cells[7] = 8
	s := g.Stats()
	want := Stats{Min: 1, Max: 8, Mean: 4, NonZeroCount: 3}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}

	model := densityModel()
	filled := New(model, 3)
	filled.Fill(model)
	want = Stats{Min: 1, Max: 2, Mean: 1.25, NonZeroCount: 4}
	if got := filled.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestOccupied(t *testing.T) {
	model := cubeModel()
	g := New(model, 4)
	g.Fill(model)

	occupied := g.Occupied()
	if len(occupied) != g.Stats().NonZeroCount {
		t.Errorf("len(Occupied()) = %d, want %d", len(occupied), g.Stats().NonZeroCount)
	}
	for i, idx := range occupied {
		if g.Cells[idx] == 0 {
			t.Errorf("Occupied()[%d] = %d is empty", i, idx)
		}
		if i > 0 && idx <= occupied[i-1] {
			t.Errorf("Occupied() not ascending at %d", i)
		}
		if !g.CellBounds(idx).Contains(g.CellCenter(idx)) {
			t.Errorf("cell %d center outside its bounds", idx)
		}
	}
}

func TestReset(t *testing.T) {
	model := cubeModel()
	g := New(model, 4)
	g.Fill(model)
	g.Reset()
	if g.Sum() != 0 {
		t.Errorf("Sum() after Reset = %d, want 0", g.Sum())
	}
}
