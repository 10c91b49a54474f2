// Package fs provides filesystem adapters.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher implements ports.Hasher using xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash returns the xxh64 hex digest of the file's contents.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file for hashing"), "path", path)
	}
	defer func() { _ = f.Close() }()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
