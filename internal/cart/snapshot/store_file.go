package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"lustre/internal/cart/models"
	"lustre/pkg/platform/sentinel"
)

// FileStore persists the snapshot as a JSON file on local disk. This is the
// default durable slot for single-instance deployments. Writes are atomic:
// the payload lands in a temp file that is renamed over the target, so a
// crash mid-write never corrupts the previous snapshot.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed snapshot store. The storage key becomes
// part of the file name so multiple slots can share a directory.
func NewFileStore(dir, storageKey string) *FileStore {
	return &FileStore{path: filepath.Join(dir, storageKey+".json")}
}

// NewFileStoreAt creates a file-backed snapshot store at an explicit path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]models.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot %s: %w", s.path, err)
	}
	items, ok := Decode(payload)
	if !ok {
		// Corrupt or incompatible file: treat as absent, never fatal.
		return nil, sentinel.ErrNotFound
	}
	return items, nil
}

func (s *FileStore) Save(ctx context.Context, items []models.LineItem) error {
	payload, err := Encode(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write cart snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cart snapshot %s: %w", s.path, err)
	}
	return nil
}
