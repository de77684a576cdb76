package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Reader reads .dlpd files. The header is parsed and validated (and the
// checksum verified, for v2 files) before any array is handed out.
type Reader struct {
	file       *os.File
	header     Header
	byName     map[string]ArrayMeta
	dataOffset int64
	dataSize   int64
}

// NewReader opens a .dlpd file, parses its header and validates it.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path) //nolint:gosec // model path is user input by design
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{file: file}
	if err := r.init(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) init() error {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r.file, magic); err != nil {
		return fmt.Errorf("failed to read magic: %w", err)
	}
	if string(magic) != MagicBytes {
		return fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	var formatVersion, flags uint32
	var headerSize uint64
	if err := binary.Read(r.file, binary.LittleEndian, &formatVersion); err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	if err := binary.Read(r.file, binary.LittleEndian, &flags); err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}
	if err := binary.Read(r.file, binary.LittleEndian, &headerSize); err != nil {
		return fmt.Errorf("failed to read header size: %w", err)
	}

	if formatVersion != FormatVersion && formatVersion != FormatVersionV2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, formatVersion)
	}
	if headerSize > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	var stored [32]byte
	preludeSize := int64(PreludeSizeV1)
	if formatVersion == FormatVersionV2 {
		preludeSize = FixedPreludeV2
		if _, err := io.ReadFull(r.file, stored[:]); err != nil {
			return fmt.Errorf("failed to read checksum: %w", err)
		}
		if _, err := r.file.Seek(preludeSize, io.SeekStart); err != nil {
			return fmt.Errorf("failed to seek past prelude: %w", err)
		}
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerJSON); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerJSON, &r.header); err != nil {
		return fmt.Errorf("failed to parse header: %w", err)
	}

	pos := preludeSize + int64(headerSize)
	r.dataOffset = pos + (HeaderAlignment-pos%HeaderAlignment)%HeaderAlignment

	info, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	r.dataSize = info.Size() - r.dataOffset
	if r.dataSize < 0 {
		return &ValidationError{Err: ErrOutOfBounds, Details: "data section truncated"}
	}

	if err := ValidateArrayTable(r.header.Arrays, r.dataSize); err != nil {
		return err
	}

	if formatVersion == FormatVersionV2 {
		if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
			return fmt.Errorf("failed to seek to data: %w", err)
		}
		computed, err := ChecksumReader(io.LimitReader(r.file, r.dataSize))
		if err != nil {
			return fmt.Errorf("failed to checksum data: %w", err)
		}
		if err := VerifyChecksum(computed, stored); err != nil {
			return err
		}
	}

	r.byName = make(map[string]ArrayMeta, len(r.header.Arrays))
	for _, a := range r.header.Arrays {
		r.byName[a.Name] = a
	}
	return nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header { return r.header }

// ArrayNames returns the names of all arrays, sorted.
func (r *Reader) ArrayNames() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadArray reads a single array by name.
func (r *Reader) ReadArray(name string) (*Array, error) {
	meta, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrArrayNotFound, name)
	}

	dtype, ok := dtypeFromString(meta.DType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDTypeMismatch, meta.DType)
	}

	data := make([]byte, meta.Size)
	if _, err := r.file.ReadAt(data, r.dataOffset+meta.Offset); err != nil {
		return nil, fmt.Errorf("failed to read array %s: %w", name, err)
	}
	return NewArray(dtype, meta.Shape, data)
}

// ReadStateDict reads every array in the file.
func (r *Reader) ReadStateDict() (StateDict, error) {
	sd := make(StateDict, len(r.byName))
	for name := range r.byName {
		a, err := r.ReadArray(name)
		if err != nil {
			return nil, err
		}
		sd[name] = a
	}
	return sd, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
