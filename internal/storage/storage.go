// Package storage holds attachment blobs behind a flat key namespace, so the
// metadata rows stay decoupled from the physical layout of any one backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotExist is returned by Open and Stat when no blob has the given key.
var ErrNotExist = errors.New("storage: blob does not exist")

// Store reads and writes attachment blobs by key. Keys are flat server-chosen
// filenames; anything resembling a path is rejected.
type Store interface {
	// Save writes the blob and returns its driver-specific location
	// (a filesystem path, an object URI, ...) for the metadata record.
	Save(ctx context.Context, key string, r io.Reader) (string, int64, error)
	// Open returns the blob contents, or ErrNotExist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}

// DiskStore keeps blobs as plain files in a single directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// validKey rejects anything that could escape the storage directory.
func validKey(key string) bool {
	return key != "" && key == filepath.Base(key) && !strings.ContainsAny(key, "/\\") && key != "." && key != ".."
}

func (s *DiskStore) path(key string) (string, error) {
	if !validKey(key) {
		return "", ErrNotExist
	}
	return filepath.Join(s.dir, key), nil
}

func (s *DiskStore) Save(ctx context.Context, key string, r io.Reader) (string, int64, error) {
	path, err := s.path(key)
	if err != nil {
		return "", 0, err
	}
	dst, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return path, n, nil
}

func (s *DiskStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotExist
	}
	return f, err
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
