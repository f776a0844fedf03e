// Package fs implements lospec.FileSystem on the local disk.
package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.FileSystem = (*FileSystem)(nil)

// FileSystem writes to the local disk. Errors are returned as *lospec.IOError.
type FileSystem struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewFileSystem creates a new FileSystem with 0755 directories and 0644 files.
func NewFileSystem() *FileSystem {
	return &FileSystem{dirPerm: 0o755, filePerm: 0o644}
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, f.dirPerm); err != nil {
		return &lospec.IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// WriteFile writes data to path, truncating any existing file.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, f.filePerm); err != nil {
		return &lospec.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadFile returns the contents of the file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &lospec.IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// RemoveAll removes path and any children.
func (f *FileSystem) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return &lospec.IOError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, &lospec.IOError{Op: "stat", Path: path, Err: err}
}
