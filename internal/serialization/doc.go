// Package serialization implements the native .dlpd container for
// saving and loading model state and training checkpoints.
//
// The .dlpd format is a simple binary container:
//
//	Format structure (v1):
//	  [4 bytes: Magic "DLPD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [Array data: raw bytes, 64-byte aligned]
//
//	v2 extends the prelude to a fixed 64-byte block carrying a SHA-256
//	checksum of the data section; readers verify it before returning
//	any array.
//
// Arrays are passive typed buffers (dtype, shape, raw little-endian
// bytes). A state dictionary maps parameter names to arrays; a
// checkpoint additionally carries optimizer state and training
// metadata in the header.
//
// Example usage:
//
//	sd := serialization.StateDict{
//	    "linear.weight": serialization.FromFloat32([]int{2, 2}, weights),
//	}
//	w := serialization.NewWriter("model.dlpd")
//	if err := w.WriteStateDict(sd, serialization.Header{Kind: "StateDict"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := serialization.NewReader("model.dlpd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	sd, err = r.ReadStateDict()
package serialization
