// Package store provides the durable local key-value store backing the cart
// and session state. Keys map to files under a data directory; writes go
// through a temp file and rename so a crash never leaves a torn value.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is the small key-value surface the rest of the client depends on.
// The file implementation is the default; tests substitute in-memory fakes.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool)
	// Put stores the value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}

// FileStore keeps one file per key under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Path returns the file path backing a key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.baseDir, key+".yml")
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(s.baseDir, 0750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	destPath := s.Path(key)
	tmpPath := destPath + ".tmp"

	if err := os.WriteFile(tmpPath, value, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("committing %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests and for degraded operation when
// the data directory is unwritable.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Put(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
