package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// File is a Store kept in a YAML document on disk. Values live in memory
// until Save is called.
type File struct {
	*Memory
	path string
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{Memory: NewMemory(), path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("read settings file %q: %w", path, err)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(b, &values); err != nil {
		return f, fmt.Errorf("parse settings file %q: %w", path, err)
	}
	for k, v := range values {
		f.Set(k, v)
	}
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string {
	return f.path
}

// Save writes the current values to disk, creating parent directories.
func (f *File) Save() error {
	b, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write settings file %q: %w", f.path, err)
	}
	return nil
}
