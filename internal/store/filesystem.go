package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// FSBackend stores dataset, mapping, and output files under a single
// root directory on the local filesystem.
type FSBackend struct {
	path string
}

// NewFSBackend builds a FSBackend rooted at path, creating it if
// necessary.
func NewFSBackend(path string) (*FSBackend, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FSBackend{path}, nil
}

func (b *FSBackend) Name() string {
	return fmt.Sprintf("filesystem (%s)", b.path)
}

func (b *FSBackend) Persist(ctx context.Context, key string, f Persister) (string, int64, error) {
	full := filepath.Join(b.path, key)
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.WithError(err).WithField("path", dir).Error("failed to create storage directory")
		return "", 0, err
	}

	file, err := os.OpenFile(full, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.WithError(err).WithField("file", full).Error("failed to write file")
		return "", 0, err
	}
	defer file.Close()

	return withHash(file, f)
}

func (b *FSBackend) Fetch(ctx context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(b.path, key))
}

func (b *FSBackend) Move(ctx context.Context, old, new string) error {
	newPath := filepath.Join(b.path, new)
	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		return err
	}
	return os.Rename(filepath.Join(b.path, old), newPath)
}
