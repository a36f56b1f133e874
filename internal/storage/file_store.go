package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is a key-value store backed by a single JSON file: one object
// mapping keys to string values. Every Set rewrites the whole file.
type FileStore struct {
	path string
	data map[string]string
}

// NewFileStore creates a file store at the given path. Nothing is read
// until first access.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() error {
	if s.data != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]string)
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.data = data
	return nil
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// Get returns the value stored under key and whether it was present.
func (s *FileStore) Get(key string) (string, bool, error) {
	if err := s.load(); err != nil {
		return "", false, err
	}
	value, ok := s.data[key]
	return value, ok, nil
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(key, value string) error {
	if err := s.load(); err != nil {
		// A corrupt file is treated as absent: start fresh rather than
		// refusing every write for the rest of the session.
		s.data = make(map[string]string)
	}
	s.data[key] = value
	return s.save()
}

func (s *FileStore) Close() error {
	return nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}
