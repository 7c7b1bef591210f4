// Package path moves a target point along a polyline of keyframes at a
// constant speed, looping back to the start.
package path

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/pkg/math"
)

// Easing shapes motion between two keyframes.
type Easing int

const (
	// EasingLinear moves at constant speed within a segment.
	EasingLinear Easing = iota
	// EasingSmoothstep slows down near each keyframe.
	EasingSmoothstep
)

// String returns the configuration name of the easing.
func (e Easing) String() string {
	switch e {
	case EasingLinear:
		return "linear"
	case EasingSmoothstep:
		return "smoothstep"
	default:
		return fmt.Sprintf("Easing(%d)", int(e))
	}
}

// ParseEasing converts a configuration name to an Easing.
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "", "linear":
		return EasingLinear, nil
	case "smoothstep":
		return EasingSmoothstep, nil
	default:
		return EasingLinear, fmt.Errorf("unknown easing %q", name)
	}
}

func (e Easing) apply(t float32) float32 {
	if e == EasingSmoothstep {
		return math.Smoothstep(t)
	}
	return t
}

// Controller tracks progress along the keyframe path. Progress is the
// fraction of the path covered and lies in [0, 1).
//
// There is no closing segment: the target reaches the last keyframe as
// progress approaches 1 and jumps back to the first when progress wraps
// to 0. TotalLength covers the open polyline only.
type Controller struct {
	keyframes   []math.Vec3
	totalLength float32

	progress float32
	speed    float32
	playing  bool
	easing   Easing
	target   math.Vec3
}

// NewController creates a paused controller over keyframes.
func NewController(keyframes []math.Vec3, speed float32) *Controller {
	c := &Controller{speed: speed}
	c.SetKeyframes(keyframes)
	return c
}

// SetKeyframes replaces the path and rewinds to its first point.
func (c *Controller) SetKeyframes(keyframes []math.Vec3) {
	c.keyframes = append([]math.Vec3(nil), keyframes...)
	c.totalLength = PolylineLength(c.keyframes)
	c.progress = 0
	c.target = c.Interpolate()

	logger.Named("path").Debug("keyframes set",
		zap.Int("count", len(c.keyframes)),
		zap.Float32("length", c.totalLength))
}

// Keyframes returns a copy of the path points.
func (c *Controller) Keyframes() []math.Vec3 {
	return append([]math.Vec3(nil), c.keyframes...)
}

// Advance moves along the path by speed*dt while playing. Progress wraps
// around any number of times, so large steps stay on the path.
func (c *Controller) Advance(dt float32) {
	if !c.playing || c.totalLength <= 0 {
		return
	}
	p := math32.Mod(c.progress+c.speed*dt/c.totalLength, 1)
	if p < 0 {
		p++
	}
	if p >= 1 {
		p = 0
	}
	c.progress = p
	c.target = c.Interpolate()
}

// Interpolate returns the point at the current progress.
func (c *Controller) Interpolate() math.Vec3 {
	n := len(c.keyframes)
	switch n {
	case 0:
		return math.Vec3{}
	case 1:
		return c.keyframes[0]
	}

	scaled := c.progress * float32(n-1)
	idx := math.Clamp(int(math32.Floor(scaled)), 0, n-1)
	next := (idx + 1) % n
	t := scaled - float32(idx)

	return c.keyframes[idx].Lerp(c.keyframes[next], c.easing.apply(t))
}

// SetProgress jumps to p, clamped to [0, 1], and updates the target even
// while paused.
func (c *Controller) SetProgress(p float32) {
	c.progress = math.Clamp(p, 0, 1)
	c.target = c.Interpolate()
}

// SyncTarget moves the target to point and snaps progress to the nearest
// keyframe.
func (c *Controller) SyncTarget(point math.Vec3) {
	c.target = point
	if len(c.keyframes) < 2 {
		c.progress = 0
		return
	}
	closest := 0
	best := math32.Inf(1)
	for i, k := range c.keyframes {
		if d := k.Distance(point); d < best {
			best = d
			closest = i
		}
	}
	c.progress = float32(closest) / float32(len(c.keyframes)-1)
}

// Reset rewinds to the start and pauses.
func (c *Controller) Reset() {
	c.playing = false
	c.SetProgress(0)
}

// Play starts advancing.
func (c *Controller) Play() { c.playing = true }

// Pause stops advancing.
func (c *Controller) Pause() { c.playing = false }

// SetPlaying sets the playing flag.
func (c *Controller) SetPlaying(playing bool) { c.playing = playing }

// Playing reports whether Advance moves the target.
func (c *Controller) Playing() bool { return c.playing }

// SetSpeed sets the speed in world units per second.
func (c *Controller) SetSpeed(speed float32) { c.speed = speed }

// Speed returns the speed in world units per second.
func (c *Controller) Speed() float32 { return c.speed }

// SetEasing selects the in-segment easing.
func (c *Controller) SetEasing(e Easing) {
	c.easing = e
	c.target = c.Interpolate()
}

// Easing returns the in-segment easing.
func (c *Controller) Easing() Easing { return c.easing }

// Progress returns the fraction of the path covered.
func (c *Controller) Progress() float32 { return c.progress }

// Target returns the current point on the path.
func (c *Controller) Target() math.Vec3 { return c.target }

// TotalLength returns the summed length of the open polyline.
func (c *Controller) TotalLength() float32 { return c.totalLength }

// LoopDuration returns the time one pass over the path takes at the
// current speed, or 0 when the controller cannot move.
func (c *Controller) LoopDuration() float32 {
	if c.speed <= 0 || c.totalLength <= 0 {
		return 0
	}
	return c.totalLength / c.speed
}
