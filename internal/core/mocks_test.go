package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ============================================================================
// MockFileSystem
// ============================================================================

// MockFileSystem implements FileSystem interface for testing
type MockFileSystem struct {
	ReadFileFunc  func(path string) ([]byte, error)
	StatFunc      func(path string) (os.FileInfo, error)
	GlobFunc      func(pattern string) ([]string, error)
	FindFilesFunc func(root, name string) ([]string, error)

	// Call tracking
	ReadFileCalls  []string
	StatCalls      []string
	GlobCalls      []string
	FindFilesCalls [][]string

	// Virtual filesystem for tracking
	Files map[string]string
}

// NewMockFileSystem creates a new MockFileSystem with empty state
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string]string),
	}
}

// ReadFile implements FileSystem
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.ReadFileCalls = append(m.ReadFileCalls, path)
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	if content, ok := m.Files[path]; ok {
		return []byte(content), nil
	}
	return nil, os.ErrNotExist
}

// Stat implements FileSystem
func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.StatCalls = append(m.StatCalls, path)
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	if _, ok := m.Files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: 0755}, nil
	}
	return nil, os.ErrNotExist
}

// Glob implements FileSystem
func (m *MockFileSystem) Glob(pattern string) ([]string, error) {
	m.GlobCalls = append(m.GlobCalls, pattern)
	if m.GlobFunc != nil {
		return m.GlobFunc(pattern)
	}
	var matches []string
	for path := range m.Files {
		if ok, _ := filepath.Match(pattern, path); ok {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// FindFiles implements FileSystem
func (m *MockFileSystem) FindFiles(root, name string) ([]string, error) {
	m.FindFilesCalls = append(m.FindFilesCalls, []string{root, name})
	if m.FindFilesFunc != nil {
		return m.FindFilesFunc(root, name)
	}
	var matches []string
	for path := range m.Files {
		if filepath.Base(path) == name && strings.HasPrefix(path, root) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// mockFileInfo implements os.FileInfo for testing
type mockFileInfo struct {
	name string
	mode os.FileMode
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 1024 }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() interface{}   { return nil }
