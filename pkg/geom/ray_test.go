package geom

import (
	"testing"

	"github.com/Faultbox/printsim/pkg/math"
)

func TestRayIntersectAABB(t *testing.T) {
	b := box(-1, -1, -1, 1, 1, 1)

	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
		wantT   float32
	}{
		{"hit from outside", NewRay(math.Vec3{X: -5}, math.UnitX), true, 4},
		{"miss", NewRay(math.Vec3{X: -5, Y: 3}, math.UnitX), false, 0},
		{"behind origin", NewRay(math.Vec3{X: 5}, math.UnitX), false, 0},
		{"start inside", NewRay(math.Vec3{}, math.UnitY), true, 1},
		{"parallel outside slab", NewRay(math.Vec3{X: -5, Z: 2}, math.UnitX), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, hit := tt.ray.IntersectAABB(b)
			if hit != tt.wantHit {
				t.Fatalf("IntersectAABB() hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && gotT != tt.wantT {
				t.Errorf("IntersectAABB() t = %v, want %v", gotT, tt.wantT)
			}
		})
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(math.Vec3{X: 1}, math.Vec3{Z: 10})
	if got := r.At(2); got != (math.Vec3{X: 1, Z: 2}) {
		t.Errorf("At(2) = %v, want (1, 0, 2)", got)
	}
}
