// Package ik animates a two-segment bone chain so its end reaches a target
// point, using the law of cosines.
package ik

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Faultbox/printsim/pkg/math"
)

// NoParent marks a root bone.
const NoParent = -1

// Bone is a joint with a transform relative to its parent.
type Bone struct {
	Name   string
	Parent int
	// Position is the offset from the parent joint in the parent's frame.
	Position math.Vec3
	// Rotation is the local rotation relative to the parent.
	Rotation math.Quat

	worldPos math.Vec3
	worldRot math.Quat
}

// Skeleton is an ordered bone hierarchy. Parents always precede their
// children.
type Skeleton struct {
	bones []*Bone
}

// NewSkeleton creates an empty skeleton.
func NewSkeleton() *Skeleton {
	return &Skeleton{}
}

// AddBone appends a bone and returns its index. parent must be NoParent or
// the index of an existing bone. World transforms are refreshed.
func (s *Skeleton) AddBone(name string, parent int, position math.Vec3, rotation math.Quat) (int, error) {
	if parent != NoParent && (parent < 0 || parent >= len(s.bones)) {
		return 0, errors.Wrapf(ErrInvalidParent, "bone %q parent %d", name, parent)
	}
	s.bones = append(s.bones, &Bone{
		Name:     name,
		Parent:   parent,
		Position: position,
		Rotation: rotation,
	})
	s.UpdateWorld()
	return len(s.bones) - 1, nil
}

// Len returns the number of bones.
func (s *Skeleton) Len() int {
	return len(s.bones)
}

// Bone returns bone i. Callers that change Position or Rotation must call
// UpdateWorld before reading world transforms.
func (s *Skeleton) Bone(i int) *Bone {
	return s.bones[i]
}

// Names returns bone names in index order.
func (s *Skeleton) Names() []string {
	names := make([]string, len(s.bones))
	for i, b := range s.bones {
		names[i] = b.Name
	}
	return names
}

// UpdateWorld recomputes world transforms from local ones.
func (s *Skeleton) UpdateWorld() {
	for _, b := range s.bones {
		if b.Parent == NoParent {
			b.worldPos = b.Position
			b.worldRot = b.Rotation
			continue
		}
		p := s.bones[b.Parent]
		b.worldRot = p.worldRot.Mul(b.Rotation).Normalize()
		b.worldPos = p.worldPos.Add(p.worldRot.Rotate(b.Position))
	}
}

// WorldPosition returns the world-space joint position of bone i.
func (s *Skeleton) WorldPosition(i int) math.Vec3 {
	return s.bones[i].worldPos
}

// WorldRotation returns the world-space rotation of bone i.
func (s *Skeleton) WorldRotation(i int) math.Quat {
	return s.bones[i].worldRot
}

// Find resolves a bone by case-insensitive substring match. A fragment
// matching several bones is accepted only when exactly one of them equals
// it case-insensitively.
func (s *Skeleton) Find(name string) (int, error) {
	query := strings.ToLower(name)
	var matches []int
	for i, b := range s.bones {
		if strings.Contains(strings.ToLower(b.Name), query) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return 0, ErrBoneNotFound
	case 1:
		return matches[0], nil
	}

	exact := -1
	for _, i := range matches {
		if strings.EqualFold(s.bones[i].Name, name) {
			if exact >= 0 {
				return 0, ErrBoneAmbiguous
			}
			exact = i
		}
	}
	if exact < 0 {
		return 0, ErrBoneAmbiguous
	}
	return exact, nil
}
