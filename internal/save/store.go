package save

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalid is returned when a document is not storable JSON.
var ErrInvalid = errors.New("invalid JSON")

// FileStore keeps the record in a single JSON file. Writes go through a
// temporary file and a rename, so readers never see a partial document.
// Concurrent writers race and the last rename wins.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// LoadRaw returns the stored document, or the default record if the file
// does not exist.
func (s *FileStore) LoadRaw(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return json.Marshal(DefaultRecord())
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// SaveRaw validates data and replaces the stored document with its compact
// form. Documents that decode to a falsy value are rejected with ErrInvalid.
func (s *FileStore) SaveRaw(_ context.Context, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil || !truthy(v) {
		return ErrInvalid
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return ErrInvalid
	}
	return s.write(buf.Bytes())
}

func (s *FileStore) write(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
