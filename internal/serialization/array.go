package serialization

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DType identifies the element type of an Array.
type DType int

// Supported element types.
const (
	Float32 DType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the element size in bytes.
func (d DType) Size() int {
	switch d {
	case Float64, Int64:
		return 8
	case Float32, Int32:
		return 4
	default: // Uint8, Bool
		return 1
	}
}

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

func dtypeFromString(s string) (DType, bool) {
	switch s {
	case "float32":
		return Float32, true
	case "float64":
		return Float64, true
	case "int32":
		return Int32, true
	case "int64":
		return Int64, true
	case "uint8":
		return Uint8, true
	case "bool":
		return Bool, true
	default:
		return 0, false
	}
}

// Array is a passive typed buffer: an element type, a shape and raw
// little-endian bytes. It carries model state through serialization and
// deliberately has no arithmetic.
type Array struct {
	dtype DType
	shape []int
	data  []byte
}

// NewArray creates an array over the given raw bytes. The byte length
// must equal the shape's element count times the element size.
func NewArray(dtype DType, shape []int, data []byte) (*Array, error) {
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrShapeMismatch, dim)
		}
		n *= dim
	}
	if want := n * dtype.Size(); len(data) != want {
		return nil, fmt.Errorf("%w: shape %v wants %d bytes, got %d", ErrShapeMismatch, shape, want, len(data))
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	return &Array{dtype: dtype, shape: owned, data: data}, nil
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns the array shape. Callers must not modify it.
func (a *Array) Shape() []int { return a.shape }

// Data returns the raw little-endian bytes. Callers must not modify
// them.
func (a *Array) Data() []byte { return a.data }

// NumElements returns the total element count.
func (a *Array) NumElements() int {
	n := 1
	for _, dim := range a.shape {
		n *= dim
	}
	return n
}

// FromFloat32 builds a float32 array from values in row-major order.
// It panics if the value count does not match the shape; use NewArray
// for fallible construction.
func FromFloat32(shape []int, values []float32) *Array {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return mustArray(Float32, shape, data)
}

// FromFloat64 builds a float64 array from values in row-major order.
func FromFloat64(shape []int, values []float64) *Array {
	data := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return mustArray(Float64, shape, data)
}

// FromInt64 builds an int64 array from values in row-major order.
func FromInt64(shape []int, values []int64) *Array {
	data := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[i*8:], uint64(v))
	}
	return mustArray(Int64, shape, data)
}

func mustArray(dtype DType, shape []int, data []byte) *Array {
	a, err := NewArray(dtype, shape, data)
	if err != nil {
		panic(err)
	}
	return a
}

// Float32s decodes the buffer as float32 values.
func (a *Array) Float32s() ([]float32, error) {
	if a.dtype != Float32 {
		return nil, fmt.Errorf("%w: have %s, want float32", ErrDTypeMismatch, a.dtype)
	}
	out := make([]float32, a.NumElements())
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(a.data[i*4:]))
	}
	return out, nil
}

// Float64s decodes the buffer as float64 values.
func (a *Array) Float64s() ([]float64, error) {
	if a.dtype != Float64 {
		return nil, fmt.Errorf("%w: have %s, want float64", ErrDTypeMismatch, a.dtype)
	}
	out := make([]float64, a.NumElements())
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(a.data[i*8:]))
	}
	return out, nil
}

// Int64s decodes the buffer as int64 values.
func (a *Array) Int64s() ([]int64, error) {
	if a.dtype != Int64 {
		return nil, fmt.Errorf("%w: have %s, want int64", ErrDTypeMismatch, a.dtype)
	}
	out := make([]int64, a.NumElements())
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(a.data[i*8:]))
	}
	return out, nil
}

// StateDict maps parameter names to arrays.
type StateDict map[string]*Array
