package mock

import "github.com/fwojciec/lospec"

// Compile-time interface verification.
var _ lospec.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of lospec.FileSystem.
type FileSystem struct {
	MkdirAllFn  func(path string) error
	WriteFileFn func(path string, data []byte) error
	ReadFileFn  func(path string) ([]byte, error)
	RemoveAllFn func(path string) error
	ExistsFn    func(path string) (bool, error)
}

func (fs *FileSystem) MkdirAll(path string) error {
	return fs.MkdirAllFn(path)
}

func (fs *FileSystem) WriteFile(path string, data []byte) error {
	return fs.WriteFileFn(path, data)
}

func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return fs.ReadFileFn(path)
}

func (fs *FileSystem) RemoveAll(path string) error {
	return fs.RemoveAllFn(path)
}

func (fs *FileSystem) Exists(path string) (bool, error) {
	return fs.ExistsFn(path)
}
