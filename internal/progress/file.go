package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is the JSON-file Store implementation.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file need not
// exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (map[string]*Record, error) {
	records := make(map[string]*Record)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return records, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return make(map[string]*Record), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if records == nil {
		records = make(map[string]*Record)
	}
	return records, nil
}

// Save writes the full document atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *FileStore) Save(records map[string]*Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}
