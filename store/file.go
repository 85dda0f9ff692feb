package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
)

// FileStore keeps the record in <dir>/<key>.json
type FileStore struct {
	path string
}

// NewFileStore creates the directory if needed, empty dir uses the working directory
func NewFileStore(dir, key string) (*FileStore, error) {
	if key == "" {
		key = constants.StorageKey
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, key+".json")}, nil
}

// Path returns the save file location
func (f *FileStore) Path() string {
	return f.path
}

// Load implements engine.SnapshotStore
func (f *FileStore) Load(ctx context.Context) (engine.Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return engine.Snapshot{}, false, nil
	}
	if err != nil {
		return engine.Snapshot{}, false, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	s, ok := Decode(data)
	if !ok {
		logrus.Warnf("ignoring malformed save file %s", f.path)
	}
	return s, ok, nil
}

// Save writes to a temp file and renames it over the save file
func (f *FileStore) Save(ctx context.Context, s engine.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

// Close implements Store
func (f *FileStore) Close() error {
	return nil
}
