package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits, protecting readers from malformed files.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB
	MaxArrayCount   = 100_000
	MaxArrayNameLen = 4096
)

// ValidateArrayTable checks the header's array table for structural
// problems: bad names, negative or out-of-bounds regions, and
// overlapping regions. Malformed tables must never reach the data
// reader.
func ValidateArrayTable(arrays []ArrayMeta, dataSize int64) error {
	if len(arrays) > MaxArrayCount {
		return &ValidationError{
			Err:     ErrTooManyArrays,
			Details: fmt.Sprintf("got %d, max %d", len(arrays), MaxArrayCount),
		}
	}

	seen := make(map[string]struct{}, len(arrays))
	for _, a := range arrays {
		if err := validateArrayName(a.Name); err != nil {
			return err
		}
		if _, ok := seen[a.Name]; ok {
			return &ValidationError{
				Err:     ErrDuplicateArrayName,
				Array:   a.Name,
				Details: "name appears more than once in the array table",
			}
		}
		seen[a.Name] = struct{}{}
		if _, ok := dtypeFromString(a.DType); !ok {
			return &ValidationError{
				Err:     ErrDTypeMismatch,
				Array:   a.Name,
				Details: fmt.Sprintf("unknown dtype %q", a.DType),
			}
		}
	}

	// Sort by offset for pairwise overlap detection.
	sorted := make([]ArrayMeta, len(arrays))
	copy(sorted, arrays)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i, a := range sorted {
		if a.Offset < 0 || a.Size < 0 {
			return &ValidationError{
				Err:     ErrNegativeOffset,
				Array:   a.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", a.Offset, a.Size),
			}
		}
		// Overflow-safe form of a.Offset+a.Size > dataSize.
		if a.Size > dataSize || a.Offset > dataSize-a.Size {
			return &ValidationError{
				Err:     ErrOutOfBounds,
				Array:   a.Name,
				Details: fmt.Sprintf("offset %d + size %d > data size %d", a.Offset, a.Size, dataSize),
			}
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if a.Offset+a.Size > next.Offset {
				return &ValidationError{
					Err:     ErrOffsetOverlap,
					Array:   a.Name,
					Array2:  next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						a.Offset, a.Offset+a.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}

func validateArrayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Err: ErrInvalidArrayName, Details: "empty array name"}
	}
	if len(name) > MaxArrayNameLen {
		return &ValidationError{
			Err:     ErrNameTooLong,
			Array:   name[:32] + "...",
			Details: fmt.Sprintf("length %d exceeds %d", len(name), MaxArrayNameLen),
		}
	}
	return nil
}
