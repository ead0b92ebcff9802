package core

import (
	"fmt"
	"os"

	"goldcheck/internal/types"
)

// GoldenStore loads the golden configuration document.
type GoldenStore interface {
	Load() ([]types.Expectation, error)
	Path() string
}

// FileGoldenStore implements GoldenStore from a document on disk.
type FileGoldenStore struct {
	path string
}

// NewFileGoldenStore creates a FileGoldenStore for the given document path.
func NewFileGoldenStore(path string) *FileGoldenStore {
	return &FileGoldenStore{path: path}
}

// Path returns the golden document path.
func (s *FileGoldenStore) Path() string {
	return s.path
}

// Load reads and parses the golden document. A missing document is a
// hard error; malformed content is not (unrecognized lines are ignored
// by the parser).
func (s *FileGoldenStore) Load() ([]types.Expectation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(ErrGoldenNotFoundMsg, s.path)
		}
		return nil, fmt.Errorf("failed to read golden document %s: %w", s.path, err)
	}

	return ParseGoldenDocument(string(data)), nil
}
