package serialization

import "time"

// Format constants.
const (
	MagicBytes       = "DLPD"
	FormatVersion    = 1    // v1: basic format without checksum
	FormatVersionV2  = 2    // v2: with SHA-256 checksum
	HeaderAlignment  = 64   // align array data to 64 bytes
	PreludeSizeV1    = 20   // magic + version + flags + header size
	FixedPreludeV2   = 64   // v2 fixed prelude size (0x40 bytes)
	ChecksumSize     = 32   // SHA-256 checksum size
	ChecksumOffsetV2 = 0x14 // checksum offset in the v2 fixed prelude
)

// Flags for the .dlpd format.
const (
	FlagHasOptimizer uint32 = 1 << 0 // optimizer state included
	FlagHasMetadata  uint32 = 1 << 1 // custom metadata included
)

// Header is the JSON header of a .dlpd file.
type Header struct {
	FormatVersion  int               `json:"format_version"`       // version of the .dlpd format
	LibraryVersion string            `json:"library_version"`      // version of DLpyd that wrote the file
	Kind           string            `json:"kind"`                 // "StateDict" or "Checkpoint"
	ID             string            `json:"id,omitempty"`         // unique file identifier
	CreatedAt      time.Time         `json:"created_at"`           // when the file was written
	Arrays         []ArrayMeta       `json:"arrays"`               // array metadata
	Metadata       map[string]string `json:"metadata,omitempty"`   // custom metadata
	CheckpointMeta *CheckpointMeta   `json:"checkpoint,omitempty"` // checkpoint metadata (optional)
}

// CheckpointMeta carries training state information for checkpoints.
type CheckpointMeta struct {
	IsCheckpoint  bool           `json:"is_checkpoint"`            // whether this is a checkpoint file
	Epoch         int            `json:"epoch"`                    // training epoch number
	Step          int64          `json:"step"`                     // training step number
	Loss          float64        `json:"loss"`                     // loss value at checkpoint
	OptimizerType string         `json:"optimizer_type,omitempty"` // optimizer identifier ("SGD", "Adam", ...)
	TrainingMeta  map[string]any `json:"training_meta,omitempty"`  // additional training metadata
}

// ArrayMeta describes one array in a .dlpd file.
type ArrayMeta struct {
	Name   string `json:"name"`   // array name (e.g. "layer.0.weight")
	DType  string `json:"dtype"`  // data type (e.g. "float32")
	Shape  []int  `json:"shape"`  // array shape
	Offset int64  `json:"offset"` // offset in the data section
	Size   int64  `json:"size"`   // size in bytes
}
