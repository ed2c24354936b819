package fileutil

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/propman/internal/errors"
)

// AtomicWriteFile writes data to path through a temp file in the same
// directory followed by a rename, so an interrupted write leaves the
// original intact. The parent directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".propman-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// WriteIfChanged atomically replaces path with data. base is the Digest of
// the content the caller read from path. Nothing is written when data hashes
// to base. When the file on disk no longer hashes to base the write is
// refused with ErrModified. The existing permission bits are kept. It
// reports whether the file was written.
func WriteIfChanged(path string, data []byte, base uint64) (bool, error) {
	if Digest(data) == base {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, errors.Wrapf(ErrModified, "%s was removed", path)
		}
		return false, errors.Wrap(err, "checking file")
	}
	current, err := DigestFile(path)
	if err != nil {
		return false, errors.Wrap(err, "checking file")
	}
	if current != base {
		return false, errors.Wrap(ErrModified, path)
	}

	if err := AtomicWriteFile(path, data, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// MarshalYAML encodes v as YAML with two-space indentation.
func MarshalYAML(v any) (data []byte, err error) {
	// yaml.v3 panics on some unsupported types.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return buf.Bytes(), nil
}

// AtomicWriteYAML writes v as YAML to path atomically with perm.
func AtomicWriteYAML(path string, v any, perm os.FileMode) error {
	data, err := MarshalYAML(v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, perm)
}
