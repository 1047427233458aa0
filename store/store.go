// Package store is the persistent store adapter: a string-keyed,
// JSON-valued local store, one file per key. It is the only durable
// boundary in the application.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes named keys. Load reports whether the key was
// present; absence is not an error.
type Store interface {
	Load(key string) (string, bool)
	Save(key, value string) error
}

// FileStore keeps each key as <dir>/<key>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates the backing directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to make store directory %v: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}

	return string(b), true
}

func (s *FileStore) Save(key, value string) error {
	//nolint:gosec
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to save key %v: %w", key, err)
	}

	return nil
}

// MemStore is a map-backed Store for tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Load(key string) (string, bool) {
	v, ok := s.values[key]

	return v, ok
}

func (s *MemStore) Save(key, value string) error {
	s.values[key] = value

	return nil
}

// LoadJSON parses the stored value for key into T. A missing key or a value
// that fails to parse yields def, and the store is left untouched - the bad
// value is only replaced on the next explicit save.
func LoadJSON[T any](s Store, key string, def T) T {
	raw, ok := s.Load(key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}

	return v
}

// SaveJSON marshals v and writes it under key.
func SaveJSON[T any](s Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %v: %w", key, err)
	}

	return s.Save(key, string(b))
}
