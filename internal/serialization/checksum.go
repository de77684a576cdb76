package serialization

import (
	"crypto/sha256"
	"io"
)

// Checksum computes the SHA-256 checksum of data.
func Checksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ChecksumReader computes the SHA-256 checksum from a reader without
// loading the whole stream into memory.
func ChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// VerifyChecksum compares a computed checksum against the stored one.
// Returns ErrChecksumMismatch if they differ.
func VerifyChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
