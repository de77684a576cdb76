package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrBadMagic           = errors.New("not a .dlpd file: bad magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOffsetOverlap      = errors.New("array offsets overlap")
	ErrOutOfBounds        = errors.New("array extends beyond data section")
	ErrNegativeOffset     = errors.New("negative offset or size")
	ErrTooManyArrays      = errors.New("too many arrays in file")
	ErrNameTooLong        = errors.New("array name too long")
	ErrInvalidArrayName   = errors.New("invalid array name")
	ErrDuplicateArrayName = errors.New("duplicate array name")
	ErrHeaderTooLarge     = errors.New("header exceeds size limit")
	ErrArrayNotFound      = errors.New("array not found")
	ErrDTypeMismatch      = errors.New("array dtype mismatch")
	ErrShapeMismatch      = errors.New("data length does not match shape")
	ErrNotCheckpoint      = errors.New("file is not a checkpoint")
)

// ValidationError reports a structural problem found while validating a
// file's array table.
type ValidationError struct {
	Err     error  // sentinel classifying the problem
	Array   string // offending array, if any
	Array2  string // second array for overlap errors
	Details string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Array != "" && e.Array2 != "":
		return fmt.Sprintf("%v: %s / %s: %s", e.Err, e.Array, e.Array2, e.Details)
	case e.Array != "":
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Array, e.Details)
	default:
		return fmt.Sprintf("%v: %s", e.Err, e.Details)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }
