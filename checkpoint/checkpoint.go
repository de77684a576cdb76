// Copyright 2025 The DLpyd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package checkpoint provides saving and loading of model state and
// training checkpoints in the native .dlpd container format.
//
// This is the public facade over internal/serialization.
//
// Example:
//
//	ckpt := &checkpoint.Checkpoint{
//	    Model: checkpoint.StateDict{
//	        "linear.weight": checkpoint.FromFloat32([]int{2, 2}, weights),
//	    },
//	    Epoch: 10,
//	}
//	if err := ckpt.Save("checkpoint.dlpd"); err != nil {
//	    log.Fatal(err)
//	}
package checkpoint

import (
	"github.com/AntonioLujanoLuna/DLpyd/internal/serialization"
)

// Array is a passive typed buffer carrying model state.
type Array = serialization.Array

// DType identifies the element type of an Array.
type DType = serialization.DType

// Supported element types.
const (
	Float32 = serialization.Float32
	Float64 = serialization.Float64
	Int32   = serialization.Int32
	Int64   = serialization.Int64
	Uint8   = serialization.Uint8
	Bool    = serialization.Bool
)

// StateDict maps parameter names to arrays.
type StateDict = serialization.StateDict

// Checkpoint is a complete training state snapshot.
type Checkpoint = serialization.Checkpoint

// Header is the JSON header of a .dlpd file.
type Header = serialization.Header

// Reader reads .dlpd files; useful for inspecting a file's header
// without loading array data.
type Reader = serialization.Reader

// Writer writes .dlpd files atomically.
type Writer = serialization.Writer

// WriterOption configures a Writer.
type WriterOption = serialization.WriterOption

// Common errors.
var (
	ErrBadMagic         = serialization.ErrBadMagic
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrNotCheckpoint    = serialization.ErrNotCheckpoint
	ErrArrayNotFound    = serialization.ErrArrayNotFound
)

// NewArray creates an array over raw little-endian bytes.
func NewArray(dtype DType, shape []int, data []byte) (*Array, error) {
	return serialization.NewArray(dtype, shape, data)
}

// FromFloat32 builds a float32 array from values in row-major order.
func FromFloat32(shape []int, values []float32) *Array {
	return serialization.FromFloat32(shape, values)
}

// FromFloat64 builds a float64 array from values in row-major order.
func FromFloat64(shape []int, values []float64) *Array {
	return serialization.FromFloat64(shape, values)
}

// FromInt64 builds an int64 array from values in row-major order.
func FromInt64(shape []int, values []int64) *Array {
	return serialization.FromInt64(shape, values)
}

// NewReader opens a .dlpd file and validates its header.
func NewReader(path string) (*Reader, error) {
	return serialization.NewReader(path)
}

// NewWriter creates a .dlpd writer for the given path.
func NewWriter(path string, opts ...WriterOption) *Writer {
	return serialization.NewWriter(path, opts...)
}

// WithFormatVersion selects the container format version to write.
func WithFormatVersion(v int) WriterOption {
	return serialization.WithFormatVersion(v)
}

// LoadCheckpoint reads a checkpoint from a .dlpd file.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	return serialization.LoadCheckpoint(path)
}

// SaveStateDict writes a bare state dictionary.
func SaveStateDict(path string, sd StateDict, metadata map[string]string) error {
	return serialization.SaveStateDict(path, sd, metadata)
}

// LoadStateDict reads every array of a .dlpd file.
func LoadStateDict(path string) (StateDict, error) {
	return serialization.LoadStateDict(path)
}
