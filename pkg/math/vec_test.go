package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	got := a.Lerp(b, 0.5)
	want := Vec3{5, 10, 15}
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got, want := a.Min(b), (Vec3{1, -1, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float32
	}{
		{"parallel", Vec3{1, 0, 0}, Vec3{3, 0, 0}, 0},
		{"perpendicular", Vec3{1, 0, 0}, Vec3{0, 2, 0}, math32.Pi / 2},
		{"opposite", Vec3{1, 0, 0}, Vec3{-1, 0, 0}, math32.Pi},
		{"diagonal", Vec3{1, 0, 0}, Vec3{1, 1, 0}, math32.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBetween(tt.a, tt.b)
			if math32.IsNaN(got) || math32.Abs(got-tt.want) > 1e-3 {
				t.Errorf("AngleBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyPerpendicular(t *testing.T) {
	for _, v := range []Vec3{UnitX, UnitY, UnitZ, {1, 1, 1}, {-3, 0.5, 2}} {
		p := AnyPerpendicular(v)
		if math32.Abs(p.Dot(v)) > 1e-5 {
			t.Errorf("AnyPerpendicular(%v) = %v is not perpendicular", v, p)
		}
		if math32.Abs(p.Length()-1) > 1e-5 {
			t.Errorf("AnyPerpendicular(%v) length = %v, want 1", v, p.Length())
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d, want 3", got)
	}
	if got := Clamp(float32(-1.5), -1, 1); got != -1 {
		t.Errorf("Clamp(-1.5, -1, 1) = %v, want -1", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0); got != 0 {
		t.Errorf("Smoothstep(0) = %v, want 0", got)
	}
	if got := Smoothstep(1); got != 1 {
		t.Errorf("Smoothstep(1) = %v, want 1", got)
	}
	if got := Smoothstep(0.5); got != 0.5 {
		t.Errorf("Smoothstep(0.5) = %v, want 0.5", got)
	}
	if got := Smoothstep(0.25); got >= 0.25 {
		t.Errorf("Smoothstep(0.25) = %v, want eased below 0.25", got)
	}
}
