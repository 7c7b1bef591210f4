package ik

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/pkg/math"
)

// DefaultEpsilon keeps targets away from the singular fully extended and
// fully folded poses.
const DefaultEpsilon = 0.01

// minAimAngle is the smallest aim correction worth applying.
const minAimAngle = 1e-6

// solvedTolerance is how close the end must already be to a target for
// Solve to leave the pose alone.
const solvedTolerance = 1e-5

// Chain names the three bones of an arm. Names are matched as
// case-insensitive substrings.
type Chain struct {
	Root   string
	Middle string
	End    string
}

// DefaultChain is the bone naming used by the bundled printer arm.
var DefaultChain = Chain{Root: "Shoulder", Middle: "Elbow", End: "Effector"}

// Option configures a TwoBoneSolver.
type Option func(*TwoBoneSolver)

// WithEpsilon sets the reach margin.
func WithEpsilon(eps float32) Option {
	return func(s *TwoBoneSolver) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// WithUp sets the reference direction for the bend plane.
func WithUp(up math.Vec3) Option {
	return func(s *TwoBoneSolver) {
		if up.LengthSq() > 0 {
			s.up = up.Normalize()
		}
	}
}

// TwoBoneSolver bends a root-middle-end chain toward a target. Segment
// lengths are taken from the pose at construction and never change.
type TwoBoneSolver struct {
	skeleton *Skeleton
	root     int
	middle   int
	end      int

	upperLength float32
	lowerLength float32
	maxReach    float32

	epsilon float32
	up      math.Vec3
}

// NewTwoBoneSolver resolves the chain bones in skeleton and snapshots the
// segment lengths from its current pose.
func NewTwoBoneSolver(skeleton *Skeleton, chain Chain, opts ...Option) (*TwoBoneSolver, error) {
	s := &TwoBoneSolver{
		skeleton: skeleton,
		epsilon:  DefaultEpsilon,
		up:       math.UnitY,
	}
	for _, opt := range opts {
		opt(s)
	}

	roles := []struct {
		role string
		name string
		dst  *int
	}{
		{"root", chain.Root, &s.root},
		{"middle", chain.Middle, &s.middle},
		{"end", chain.End, &s.end},
	}
	for _, r := range roles {
		idx, err := skeleton.Find(r.name)
		if err != nil {
			return nil, errors.Wrapf(err, "%s bone %q (available: %s)",
				r.role, r.name, strings.Join(skeleton.Names(), ", "))
		}
		*r.dst = idx
	}

	skeleton.UpdateWorld()
	a := skeleton.WorldPosition(s.root)
	b := skeleton.WorldPosition(s.middle)
	c := skeleton.WorldPosition(s.end)
	s.upperLength = a.Distance(b)
	s.lowerLength = b.Distance(c)
	s.maxReach = s.upperLength + s.lowerLength - s.epsilon

	logger.Named("ik").Debug("two-bone solver ready",
		zap.String("root", skeleton.Bone(s.root).Name),
		zap.String("middle", skeleton.Bone(s.middle).Name),
		zap.String("end", skeleton.Bone(s.end).Name),
		zap.Float32("upper", s.upperLength),
		zap.Float32("lower", s.lowerLength))

	return s, nil
}

// UpperLength returns the root to middle distance.
func (s *TwoBoneSolver) UpperLength() float32 { return s.upperLength }

// LowerLength returns the middle to end distance.
func (s *TwoBoneSolver) LowerLength() float32 { return s.lowerLength }

// MaxReach returns the farthest distance from the root the end can be
// placed at.
func (s *TwoBoneSolver) MaxReach() float32 { return s.maxReach }

// Skeleton returns the skeleton the solver poses.
func (s *TwoBoneSolver) Skeleton() *Skeleton { return s.skeleton }

// EndPosition returns the current world position of the end bone.
func (s *TwoBoneSolver) EndPosition() math.Vec3 {
	return s.skeleton.WorldPosition(s.end)
}

// Solve rotates the root and middle bones so the end moves to target, or
// as close as the chain allows. The middle joint bends toward the up
// direction. Unreachable targets leave the arm fully extended and pointing
// at the target. A target the end already sits on changes nothing, so a
// rest pose stays as it is whichever way its elbow points.
func (s *TwoBoneSolver) Solve(target math.Vec3) {
	sk := s.skeleton
	sk.UpdateWorld()

	lab := s.upperLength
	lcb := s.lowerLength
	if lab <= 0 || lcb <= 0 {
		return
	}
	if s.reached(target) {
		return
	}

	// The bend axis is only normal to the chain once the middle joint lies
	// in the plane of the root-end line and up
	s.alignPole()

	a := sk.WorldPosition(s.root)
	b := sk.WorldPosition(s.middle)
	c := sk.WorldPosition(s.end)
	dist := math.Clamp(target.Sub(a).Length(), s.epsilon, lab+lcb-s.epsilon)

	// Extend or contract the chain to the target distance
	acAB0 := math.AngleBetween(c.Sub(a), b.Sub(a))
	baBC0 := math.AngleBetween(a.Sub(b), c.Sub(b))
	acAB1 := acosClamped((lcb*lcb - lab*lab - dist*dist) / (-2 * lab * dist))
	baBC1 := acosClamped((dist*dist - lab*lab - lcb*lcb) / (-2 * lab * lcb))

	axis := s.bendAxis(a, b, c)
	s.rotateWorld(s.root, axis, acAB1-acAB0)
	s.rotateWorld(s.middle, axis, baBC1-baBC0)
	sk.UpdateWorld()

	// Aim the chain at the target
	c = sk.WorldPosition(s.end)
	ac := c.Sub(a)
	at := target.Sub(a)
	angle := math.AngleBetween(ac, at)
	aim := ac.Cross(at)
	if angle >= minAimAngle && aim.LengthSq() > 0 {
		s.rotateWorld(s.root, aim.Normalize(), angle)
		sk.UpdateWorld()
	}

	// Aiming tilts the bend plane; the end stays put while the elbow
	// swings back up
	s.alignPole()
}

// reached reports whether the end is on target and the target lies inside
// the reach clamp, so no phase of Solve would move the chain.
func (s *TwoBoneSolver) reached(target math.Vec3) bool {
	sk := s.skeleton
	if sk.WorldPosition(s.end).Distance(target) > solvedTolerance {
		return false
	}
	dist := target.Distance(sk.WorldPosition(s.root))
	return dist >= s.epsilon && dist <= s.upperLength+s.lowerLength-s.epsilon
}

// alignPole rotates the root about the root-end line so the middle joint
// sits on the up side of it. The end does not move.
func (s *TwoBoneSolver) alignPole() {
	sk := s.skeleton
	a := sk.WorldPosition(s.root)
	c := sk.WorldPosition(s.end)
	twist := s.poleTwist(a, sk.WorldPosition(s.middle), c)
	if math32.Abs(twist) < minAimAngle {
		return
	}
	s.rotateWorld(s.root, c.Sub(a).Normalize(), twist)
	sk.UpdateWorld()
}

// poleTwist returns the rotation about the root-end line that moves the
// middle joint toward the up side of that line. It is 0 when either the
// chain is straight or the line is parallel to up.
func (s *TwoBoneSolver) poleTwist(a, b, c math.Vec3) float32 {
	ac := c.Sub(a)
	if ac.LengthSq() < 1e-12 {
		return 0
	}
	dir := ac.Normalize()
	current := reject(b.Sub(a), dir)
	wanted := reject(s.up, dir)
	if current.LengthSq() < 1e-12 || wanted.LengthSq() < 1e-12 {
		return 0
	}
	return math32.Atan2(current.Cross(wanted).Dot(dir), current.Dot(wanted))
}

// reject removes the component of v along the unit vector dir.
func reject(v, dir math.Vec3) math.Vec3 {
	return v.Sub(dir.Scale(v.Dot(dir)))
}

// bendAxis returns the normal of the bend plane oriented so that a positive
// rotation of the middle bone opens the elbow.
func (s *TwoBoneSolver) bendAxis(a, b, c math.Vec3) math.Vec3 {
	ac := c.Sub(a)
	ab := b.Sub(a)
	plane := ac.Cross(ab)

	axis := ac.Cross(s.up)
	if axis.LengthSq() < 1e-12 {
		axis = plane
	}
	if axis.LengthSq() < 1e-12 {
		axis = math.AnyPerpendicular(ac)
	}
	if axis.Dot(plane) < 0 {
		axis = axis.Negate()
	}
	return axis.Normalize()
}

// rotateWorld rotates bone i about a world-space axis through its joint.
func (s *TwoBoneSolver) rotateWorld(i int, axis math.Vec3, angle float32) {
	if angle == 0 {
		return
	}
	bone := s.skeleton.Bone(i)
	local := s.skeleton.WorldRotation(i).Inverse().Rotate(axis)
	bone.Rotation = bone.Rotation.Mul(math.QuatFromAxisAngle(local, angle)).Normalize()
}

func acosClamped(x float32) float32 {
	return math32.Acos(math.Clamp(x, -1, 1))
}
