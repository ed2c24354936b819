package fileutil

import (
	"github.com/cespare/xxhash/v2"

	"github.com/thoreinstein/propman/internal/errors"
)

// ErrModified is returned by WriteIfChanged when the file on disk no longer
// matches the digest the caller read.
var ErrModified = errors.New("file changed since it was read")

// Digest returns a 64-bit xxhash of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestFile returns the Digest of the file at path, read with the same
// limit as ReadFileWithLimit.
func DigestFile(path string) (uint64, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return 0, err
	}
	return Digest(data), nil
}
