// Package config resolves the environment-variable-driven parts of the
// miner's configuration: which storage backend to use for dataset input
// and complex output, and its backend-specific settings. Everything
// that varies per invocation (partitioning strategy, objective, minArcs,
// and so on) is a command-line flag instead, parsed directly in
// cmd/odsgminer.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Backend names a supported storage backend.
type Backend int

const (
	FileSystem Backend = iota
	S3
	GCS
)

func (b Backend) String() string {
	switch b {
	case FileSystem:
		return "filesystem"
	case S3:
		return "s3"
	case GCS:
		return "gcs"
	default:
		return "unknown"
	}
}

// StorageConfig holds the settings needed to construct whichever
// store.Backend ODSGMINER_STORAGE_BACKEND selects.
type StorageConfig struct {
	Backend   Backend
	FSPath    string // filesystem backend root
	S3Bucket  string
	S3Region  string
	GCSBucket string
}

// getConfig returns the named environment variable, falling back to def
// when unset. If def is empty and the variable is unset, it logs a
// fatal error describing what was expected, matching the fail-fast
// convention used throughout this configuration layer.
func getConfig(key, desc, def string) string {
	value := os.Getenv(key)
	if value == "" && def == "" {
		log.WithFields(log.Fields{
			"option":      key,
			"description": desc,
		}).Fatal("missing required configuration envvar")
	} else if value == "" {
		return def
	}
	return value
}

// FromEnv resolves StorageConfig from the environment. It terminates
// the process via logrus.Fatal (matching getConfig's convention) if a
// required backend-specific variable is missing.
func FromEnv() StorageConfig {
	switch os.Getenv("ODSGMINER_STORAGE_BACKEND") {
	case "s3":
		return StorageConfig{
			Backend:  S3,
			S3Bucket: getConfig("S3_BUCKET", "S3 bucket for dataset/output storage", ""),
			S3Region: getConfig("AWS_REGION", "AWS region", "us-east-1"),
		}
	case "gcs":
		return StorageConfig{
			Backend:   GCS,
			GCSBucket: getConfig("GCS_BUCKET", "GCS bucket for dataset/output storage", ""),
		}
	case "filesystem", "":
		return StorageConfig{
			Backend: FileSystem,
			FSPath:  getConfig("STORAGE_PATH", "local directory for dataset/output storage", "."),
		}
	default:
		log.WithField("values", []string{"filesystem", "s3", "gcs"}).
			Fatal("ODSGMINER_STORAGE_BACKEND must be set to a supported value")
		return StorageConfig{}
	}
}
