package fs

import (
	iofs "io/fs"
	"os"
)

// OSFileSystem performs filesystem operations directly against the host OS.
type OSFileSystem struct{}

// NewFileSystem creates a new OSFileSystem.
func NewFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns information about the file or directory at path.
func (f *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// ListFiles returns the sorted names of the files directly inside dir.
func (f *OSFileSystem) ListFiles(dir string) ([]string, error) {
	return ListFiles(dir)
}

// MkdirAll creates path and any missing parents.
func (f *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Remove deletes a single file or an empty directory.
func (f *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes path and everything beneath it.
func (f *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Rename moves src to dst.
func (f *OSFileSystem) Rename(src, dst string) error {
	return os.Rename(src, dst)
}
