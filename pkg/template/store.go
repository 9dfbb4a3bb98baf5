package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists templates as a single JSON file. It is a plain file store:
// load reads the whole list, save rewrites it atomically via a temp file.
type Store struct {
	path string
}

// NewStore creates a store backed by the JSON file at path. The file does
// not need to exist yet; Load on a missing file returns an empty list.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all stored templates. A missing file is not an error.
func (s *Store) Load() ([]*Template, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	var templates []*Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	return templates, nil
}

// Save rewrites the store with the given templates. The write goes through
// a temp file in the same directory so a crash never truncates the store.
func (s *Store) Save(templates []*Template) error {
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".templates-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	return nil
}

// Get returns the stored template with the given ID.
func (s *Store) Get(id string) (*Template, error) {
	templates, err := s.Load()
	if err != nil {
		return nil, err
	}

	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Put inserts the template, or replaces the stored template with the same
// ID if one exists.
func (s *Store) Put(tmpl *Template) error {
	templates, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i, t := range templates {
		if t.ID == tmpl.ID {
			templates[i] = tmpl
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, tmpl)
	}

	return s.Save(templates)
}

// Delete removes the stored template with the given ID.
func (s *Store) Delete(id string) error {
	templates, err := s.Load()
	if err != nil {
		return err
	}

	for i, t := range templates {
		if t.ID == id {
			return s.Save(append(templates[:i], templates[i+1:]...))
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
