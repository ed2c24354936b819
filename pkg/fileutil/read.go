package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/propman/internal/errors"
)

// MaxFileSize is the largest file ReadFileWithLimit accepts (8MB). Notes
// beyond this are almost certainly not hand-written text.
const MaxFileSize = 8 << 20

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file of at most MaxFileSize bytes. Errors from
// opening the file keep their cause, so errors.Is(err, fs.ErrNotExist)
// still works.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		if info.IsDir() {
			return nil, errors.Newf("%s is a directory", path)
		}
		if info.Size() > MaxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
