package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"cloud.google.com/go/storage"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
)

const gcsScope = "https://www.googleapis.com/auth/devstorage"

var httpClient = &http.Client{}

// GCSBackend stores dataset, mapping, and output files in a single
// Google Cloud Storage bucket.
type GCSBackend struct {
	bucket string
	handle *storage.BucketHandle
}

// NewGCSBackend builds a GCSBackend for the given bucket, probing
// bucket access before returning.
func NewGCSBackend(ctx context.Context, bucket string) (*GCSBackend, error) {
	if bucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET must be configured for GCS usage")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set up Cloud Storage client: %w", err)
	}

	handle := client.Bucket(bucket)
	if _, err := handle.Attrs(ctx); err != nil {
		log.WithError(err).WithField("bucket", bucket).Error("could not access configured bucket")
		return nil, err
	}

	return &GCSBackend{bucket: bucket, handle: handle}, nil
}

func (b *GCSBackend) Name() string {
	return "Google Cloud Storage (" + b.bucket + ")"
}

func (b *GCSBackend) Persist(ctx context.Context, path string, f Persister) (string, int64, error) {
	obj := b.handle.Object(path)
	w := obj.NewWriter(ctx)

	hash, size, err := withHash(w, f)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("failed to upload to GCS")
		return hash, size, err
	}

	return hash, size, w.Close()
}

func (b *GCSBackend) Fetch(ctx context.Context, path string) (io.ReadCloser, error) {
	obj := b.handle.Object(path)
	if _, err := obj.Attrs(ctx); err != nil {
		return nil, err
	}
	return obj.NewReader(ctx)
}

// Move renames an object. The Cloud Storage Go API has no rename call,
// so this issues the documented rewrite-then-delete HTTP request
// manually.
func (b *GCSBackend) Move(ctx context.Context, old, new string) error {
	creds, err := google.FindDefaultCredentials(ctx, gcsScope)
	if err != nil {
		return err
	}

	token, err := creds.TokenSource.Token()
	if err != nil {
		return err
	}

	rewriteURL := fmt.Sprintf(
		"https://www.googleapis.com/storage/v1/b/%s/o/%s/rewriteTo/b/%s/o/%s",
		url.PathEscape(b.bucket), url.PathEscape(old),
		url.PathEscape(b.bucket), url.PathEscape(new),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", rewriteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+token.AccessToken)

	if _, err := httpClient.Do(req); err != nil {
		return err
	}

	// rewriteTo copies rather than renames, so the source object must
	// be deleted separately.
	if err := b.handle.Object(old).Delete(ctx); err != nil {
		log.WithError(err).WithFields(log.Fields{"old": old, "new": new}).Warn("failed to delete renamed object")
	}

	return nil
}
