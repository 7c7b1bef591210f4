package ik

import "github.com/pkg/errors"

// Bone resolution errors.
var (
	ErrBoneNotFound  = errors.New("bone not found")
	ErrBoneAmbiguous = errors.New("bone name is ambiguous")
	ErrInvalidParent = errors.New("invalid parent bone index")
)
