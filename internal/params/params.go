// Package params persists named parameter documents: nested mappings of
// scalars consumed by pipeline stages.
package params

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store reads and writes parameter documents under a single directory.
// Document names are file names without the .yaml extension.
type Store struct {
	Dir string
}

// path returns the on-disk location of a named document.
func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+".yaml")
}

// WriteDocument serializes doc to <dir>/<name>.yaml, creating the
// directory if needed. Any nested mapping of scalars, sequences and
// mappings is accepted; no schema is enforced.
func (s *Store) WriteDocument(name string, doc any) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create params dir: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal params %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("write params %s: %w", name, err)
	}
	return nil
}

// ReadDocument deserializes a named document back into a nested mapping.
// Integers and floats keep their distinction; sequence order is preserved.
func (s *Store) ReadDocument(name string) (map[string]any, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("read params %s: %w", name, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse params %s: %w", name, err)
	}
	return doc, nil
}

// ReadInto deserializes a named document into a typed value.
func (s *Store) ReadInto(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read params %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse params %s: %w", name, err)
	}
	return nil
}
