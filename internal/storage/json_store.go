package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileBlob struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore is a single-file key/value store. The whole blob is rewritten
// on every Set, so the last synchronous write wins.
type JSONStore struct {
	path string
	blob *fileBlob
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.blob = &fileBlob{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'noor init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.blob = &fileBlob{}
	if err := json.Unmarshal(data, s.blob); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.blob.Values == nil {
		s.blob.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.blob, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.blob == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.blob.Values[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.blob == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.blob.Values[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.blob == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.blob.Values, key)
	return s.save()
}

// Path returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple noor processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) Path() string {
	return s.path
}
