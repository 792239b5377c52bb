// Package repository provides the client's durable storage: a file-backed
// key-value store and typed repositories for the session identity, the
// bookmark set and the theme preference. Serialization lives here so the
// services above it never touch raw stored bytes.
package repository

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is the durable key-value persistence surface. Each key is owned by
// exactly one repository; no two repositories write the same key.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// FileStore implements Store with one file per key inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileStore) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	m map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	delete(s.m, key)
	return nil
}
