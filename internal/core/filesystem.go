package core

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts the read-only filesystem operations the backends
// need, so tests can substitute fixtures without touching the host.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
	FindFiles(root, name string) ([]string, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the named file.
func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for the named path.
func (f *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Glob returns the paths matching a shell pattern.
func (f *OSFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// FindFiles walks root recursively and returns every file whose base
// name equals name, in traversal order. Unreadable subtrees are skipped.
func (f *OSFileSystem) FindFiles(root, name string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if !d.IsDir() && d.Name() == name {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
