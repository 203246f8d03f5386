// Package store implements the storage backends the miner reads
// datasets from and writes mined complex output to: local filesystem,
// AWS S3, and Google Cloud Storage, selected by internal/config.
package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
)

// Persister is handed a writer by Persist and must stream its data into
// it. Persist itself is responsible for reporting the written data's
// hash and size back to the caller; f only needs to report a write
// error, if any.
type Persister = func(io.Writer) error

// Backend is a storage backend capable of persisting mining output,
// fetching dataset/mapping input, and renaming a staged upload into its
// final path. There is no HTTP-serving method here: unlike the image
// registry this was adapted from, a batch mining run never serves bytes
// back over the wire.
type Backend interface {
	// Name identifies the backend for log messages.
	Name() string

	// Persist provides f with a writer that stores its output in the
	// backend, returning the SHA256 hash and byte count of everything
	// f wrote.
	Persist(ctx context.Context, path string, f Persister) (string, int64, error)

	// Fetch retrieves a dataset or mapping file from the backend.
	Fetch(ctx context.Context, path string) (io.ReadCloser, error)

	// Move renames a path inside the backend. The S3 and GCS backends
	// copy the object to the new path and then delete the old one.
	Move(ctx context.Context, old, new string) error
}

// byteCounter is an io.Writer that only counts the bytes written to it.
type byteCounter struct {
	count int64
}

func (b *byteCounter) Write(p []byte) (int, error) {
	b.count += int64(len(p))
	return len(p), nil
}

// withHash wraps dst so every byte f writes to it is also hashed and
// counted, then reports the SHA256 hash and byte count of f's output
// alongside whatever error f returned. Every Backend.Persist
// implementation routes through this so callers never have to hash
// their own output.
func withHash(dst io.Writer, f Persister) (string, int64, error) {
	shasum := sha256.New()
	counter := &byteCounter{}
	multi := io.MultiWriter(dst, shasum, counter)

	err := f(multi)
	return fmt.Sprintf("%x", shasum.Sum(nil)), counter.count, err
}
