package path

import (
	"testing"

	"github.com/Faultbox/printsim/pkg/math"
)

func TestPolylineLength(t *testing.T) {
	if got := PolylineLength(lPath); got != 2 {
		t.Errorf("PolylineLength() = %v, want 2", got)
	}
	if got := PolylineLength(nil); got != 0 {
		t.Errorf("PolylineLength(nil) = %v, want 0", got)
	}
}

func TestKeyframesFromVertices(t *testing.T) {
	vertices := make([]math.Vec3, 7)
	for i := range vertices {
		vertices[i] = math.Vec3{X: float32(i)}
	}

	tests := []struct {
		step  int
		wantX []float32
	}{
		{1, []float32{0, 1, 2, 3, 4, 5, 6}},
		{0, []float32{0, 1, 2, 3, 4, 5, 6}},
		{3, []float32{0, 3, 6}},
		{10, []float32{0}},
	}
	for _, tt := range tests {
		got := KeyframesFromVertices(vertices, tt.step)
		if len(got) != len(tt.wantX) {
			t.Errorf("step %d: got %d keyframes, want %d", tt.step, len(got), len(tt.wantX))
			continue
		}
		for i, x := range tt.wantX {
			if got[i].X != x {
				t.Errorf("step %d: keyframe %d = %v, want X=%v", tt.step, i, got[i], x)
			}
		}
	}
}

func TestSimplify(t *testing.T) {
	points := []math.Vec3{
		{X: 0},
		{X: 0.05},
		{X: 0.2},
		{X: 0.25},
		{X: 0.28},
	}
	got := Simplify(points, 0.1)
	wantX := []float32{0, 0.2, 0.28}
	if len(got) != len(wantX) {
		t.Fatalf("Simplify() = %v, want X=%v", got, wantX)
	}
	for i, x := range wantX {
		if got[i].X != x {
			t.Errorf("Simplify()[%d] = %v, want X=%v", i, got[i], x)
		}
	}

	if got := Simplify(points[:1], 0.1); len(got) != 1 {
		t.Errorf("Simplify(single) = %v, want one point", got)
	}
}
