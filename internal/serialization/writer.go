package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/renameio/v2"
)

const dlpydVersion = "0.1.0" // current DLpyd version

// Writer writes .dlpd files. The whole file is assembled in memory and
// replaced atomically, so an interrupted save never leaves a truncated
// checkpoint behind.
type Writer struct {
	path          string
	formatVersion int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithFormatVersion selects the format version to write. The default is
// v2 (checksummed).
func WithFormatVersion(v int) WriterOption {
	return func(w *Writer) { w.formatVersion = v }
}

// NewWriter creates a .dlpd writer for the given path.
func NewWriter(path string, opts ...WriterOption) *Writer {
	w := &Writer{path: path, formatVersion: FormatVersionV2}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteStateDict writes a state dictionary with the given header.
//
// The header's array table, format version, library version and
// creation time are filled in by the writer; callers set Kind,
// Metadata, ID and CheckpointMeta.
func (w *Writer) WriteStateDict(stateDict StateDict, header Header) error {
	if w.formatVersion != FormatVersion && w.formatVersion != FormatVersionV2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, w.formatVersion)
	}

	// Deterministic array order: sorted by name.
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		if err := validateArrayName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var offset int64
	header.Arrays = make([]ArrayMeta, 0, len(names))
	for _, name := range names {
		a := stateDict[name]
		size := int64(len(a.Data()))
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   name,
			DType:  a.DType().String(),
			Shape:  a.Shape(),
			Offset: offset,
			Size:   size,
		})
		offset += size
	}

	header.FormatVersion = w.formatVersion
	header.LibraryVersion = dlpydVersion
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, len(headerJSON))
	}

	var flags uint32
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.CheckpointMeta != nil && header.CheckpointMeta.IsCheckpoint {
		flags |= FlagHasOptimizer
	}

	// Data section, in table order.
	var data bytes.Buffer
	for _, name := range names {
		data.Write(stateDict[name].Data())
	}

	preludeSize := PreludeSizeV1
	if w.formatVersion == FormatVersionV2 {
		preludeSize = FixedPreludeV2
	}

	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	write32 := func(v uint32) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	write32(uint32(w.formatVersion)) //nolint:gosec // format version is 1 or 2
	write32(flags)
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON)))

	if w.formatVersion == FormatVersionV2 {
		sum := Checksum(data.Bytes())
		buf.Write(sum[:])
		buf.Write(make([]byte, FixedPreludeV2-ChecksumOffsetV2-ChecksumSize))
	}

	buf.Write(headerJSON)

	// Pad so the data section starts 64-byte aligned.
	pos := int64(preludeSize) + int64(len(headerJSON))
	if pad := (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment; pad > 0 {
		buf.Write(make([]byte, pad))
	}

	buf.Write(data.Bytes())

	if err := renameio.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}
