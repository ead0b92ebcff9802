package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultsName is the optional per-directory defaults file.
const DefaultsName = ".goldcheck.yml"

// Defaults holds optional run defaults loaded from .goldcheck.yml.
// CLI flags always win over these values.
type Defaults struct {
	SplunkHome     string `yaml:"splunk_home,omitempty"`
	OutputFormat   string `yaml:"output_format,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	Role           string `yaml:"role,omitempty"`
}

// DefaultsStore handles .goldcheck.yml I/O operations.
type DefaultsStore interface {
	Load() (Defaults, error)
	Path() string
}

// FileDefaultsStore implements DefaultsStore using the filesystem.
type FileDefaultsStore struct {
	dir string
}

// NewFileDefaultsStore creates a FileDefaultsStore reading from dir.
func NewFileDefaultsStore(dir string) *FileDefaultsStore {
	return &FileDefaultsStore{dir: dir}
}

// Path returns the defaults file path.
func (s *FileDefaultsStore) Path() string {
	return filepath.Join(s.dir, DefaultsName)
}

// Load reads and parses .goldcheck.yml. A missing file yields zero
// defaults, not an error; malformed YAML is an error.
func (s *FileDefaultsStore) Load() (Defaults, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil // OK: file doesn't exist yet
		}
		return Defaults{}, fmt.Errorf("failed to read %s: %w", DefaultsName, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("invalid %s: %w", DefaultsName, err)
	}

	return d, nil
}
