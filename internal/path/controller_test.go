package path

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/printsim/pkg/math"
)

var lPath = []math.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
}

func TestNewController(t *testing.T) {
	c := NewController(lPath, 1)

	if c.TotalLength() != 2 {
		t.Errorf("TotalLength() = %v, want 2", c.TotalLength())
	}
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", c.Progress())
	}
	if c.Target() != lPath[0] {
		t.Errorf("Target() = %v, want %v", c.Target(), lPath[0])
	}
	if c.Playing() {
		t.Error("new controller should be paused")
	}
	if c.Easing() != EasingLinear {
		t.Errorf("Easing() = %v, want linear", c.Easing())
	}
}

func TestAdvanceScenario(t *testing.T) {
	c := NewController(lPath, 1)
	c.Play()

	for i := 0; i < 10; i++ {
		c.Advance(0.1)
	}

	if !near(c.Progress(), 0.5, 1e-5) {
		t.Errorf("Progress() = %v, want 0.5", c.Progress())
	}
	if want := (math.Vec3{X: 1}); !c.Target().ApproxEqual(want, 1e-5) {
		t.Errorf("Target() = %v, want %v", c.Target(), want)
	}
}

func TestAdvanceFullLoop(t *testing.T) {
	c := NewController(lPath, 0.5)
	c.SetProgress(0.3)
	c.Play()

	// One loop takes TotalLength/speed = 4s
	for i := 0; i < 40; i++ {
		c.Advance(0.1)
	}

	if d := loopDistance(c.Progress(), 0.3); d > 1e-4 {
		t.Errorf("Progress() = %v, want 0.3 after one loop", c.Progress())
	}
}

func TestAdvanceLargeStep(t *testing.T) {
	tests := []struct {
		name string
		dt   float32
		want float32
	}{
		{"two and a half loops", 5, 0.5},
		{"negative step", -1, 0.5},
		{"exact loops", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(lPath, 1)
			c.Play()
			c.Advance(tt.dt)
			p := c.Progress()
			if p < 0 || p >= 1 {
				t.Fatalf("Progress() = %v, want in [0, 1)", p)
			}
			if d := loopDistance(p, tt.want); d > 1e-5 {
				t.Errorf("Progress() = %v, want %v", p, tt.want)
			}
		})
	}
}

func TestAdvancePaused(t *testing.T) {
	c := NewController(lPath, 1)
	c.Advance(0.5)
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0 while paused", c.Progress())
	}

	c.Play()
	c.Pause()
	c.Advance(0.5)
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0 after Pause", c.Progress())
	}
}

func TestAdvanceZeroLength(t *testing.T) {
	c := NewController([]math.Vec3{{X: 1}, {X: 1}}, 1)
	c.Play()
	c.Advance(1)
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", c.Progress())
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	empty := NewController(nil, 1)
	if empty.Target() != (math.Vec3{}) {
		t.Errorf("empty Target() = %v, want origin", empty.Target())
	}

	single := NewController([]math.Vec3{{X: 2, Y: 3, Z: 4}}, 1)
	single.SetProgress(0.7)
	if want := (math.Vec3{X: 2, Y: 3, Z: 4}); single.Target() != want {
		t.Errorf("single Target() = %v, want %v", single.Target(), want)
	}
}

func TestInterpolateNoClosingSegment(t *testing.T) {
	c := NewController(lPath, 1)

	// Just before the end the target is on the last segment, not heading
	// back to the first keyframe
	c.SetProgress(0.999)
	if want := (math.Vec3{X: 1, Y: 0.998}); !c.Target().ApproxEqual(want, 1e-3) {
		t.Errorf("Target() at 0.999 = %v, want %v", c.Target(), want)
	}

	c.Play()
	c.Advance(0.004)
	if !near(c.Progress(), 0.001, 1e-4) {
		t.Errorf("Progress() after wrap = %v, want 0.001", c.Progress())
	}
	if want := (math.Vec3{X: 0.002}); !c.Target().ApproxEqual(want, 1e-3) {
		t.Errorf("Target() after wrap = %v, want %v", c.Target(), want)
	}
}

func TestSetProgress(t *testing.T) {
	tests := []struct {
		name    string
		p       float32
		playing bool
		want    math.Vec3
	}{
		{"start paused", 0, false, lPath[0]},
		{"start playing", 0, true, lPath[0]},
		{"clamped low", -3, false, lPath[0]},
		{"quarter", 0.25, false, math.Vec3{X: 0.5}},
		{"end", 1, false, lPath[2]},
		{"clamped high", 5, true, lPath[2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(lPath, 1)
			c.SetPlaying(tt.playing)
			c.SetProgress(0.6)
			c.SetProgress(tt.p)
			if !c.Target().ApproxEqual(tt.want, 1e-6) {
				t.Errorf("Target() = %v, want %v", c.Target(), tt.want)
			}
		})
	}
}

func TestSmoothstepEasing(t *testing.T) {
	c := NewController(lPath, 1)
	c.SetEasing(EasingSmoothstep)

	c.SetProgress(0.125)
	// Segment t = 0.25 eases to 0.15625
	if want := (math.Vec3{X: 0.15625}); !c.Target().ApproxEqual(want, 1e-6) {
		t.Errorf("Target() = %v, want %v", c.Target(), want)
	}

	// Keyframes and midpoints are unaffected
	c.SetProgress(0.25)
	if want := (math.Vec3{X: 0.5}); !c.Target().ApproxEqual(want, 1e-6) {
		t.Errorf("Target() = %v, want %v", c.Target(), want)
	}
}

func TestSyncTarget(t *testing.T) {
	c := NewController(lPath, 1)
	p := math.Vec3{X: 0.9, Y: 0.2}
	c.SyncTarget(p)

	if c.Target() != p {
		t.Errorf("Target() = %v, want %v", c.Target(), p)
	}
	if c.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", c.Progress())
	}
}

func TestReset(t *testing.T) {
	c := NewController(lPath, 1)
	c.Play()
	c.Advance(0.7)
	c.Reset()

	if c.Playing() || c.Progress() != 0 || c.Target() != lPath[0] {
		t.Errorf("after Reset: playing=%v progress=%v target=%v", c.Playing(), c.Progress(), c.Target())
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		in      string
		want    Easing
		wantErr bool
	}{
		{"", EasingLinear, false},
		{"linear", EasingLinear, false},
		{"smoothstep", EasingSmoothstep, false},
		{"bounce", EasingLinear, true},
	}
	for _, tt := range tests {
		got, err := ParseEasing(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEasing(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEasing(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestLoopDuration(t *testing.T) {
	c := NewController(lPath, 0.5)
	if c.LoopDuration() != 4 {
		t.Errorf("LoopDuration() = %v, want 4", c.LoopDuration())
	}
	c.SetSpeed(0)
	if c.LoopDuration() != 0 {
		t.Errorf("LoopDuration() = %v, want 0", c.LoopDuration())
	}
}

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// loopDistance is the distance between two progress values on the unit loop.
func loopDistance(a, b float32) float32 {
	d := math32.Abs(a - b)
	return min(d, 1-d)
}
