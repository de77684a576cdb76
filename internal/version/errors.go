package version

import "errors"

// Common errors.
var (
	ErrInvalidVersion    = errors.New("invalid version")
	ErrInvalidConstraint = errors.New("invalid version constraint")
	ErrInvalidOperator   = errors.New("invalid constraint operator")
	ErrInvalidSpecifier  = errors.New("invalid dependency specifier")
	ErrInvalidName       = errors.New("invalid distribution name")
)
