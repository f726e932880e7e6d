// Package storage writes report exports to a named disk.
//
// Two drivers are available:
//   - "local": local filesystem (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
//	storage.Connect(ctx)
//	disk, err := storage.Use("s3")
//	err = disk.Put(ctx, "reports/revenue-monthly.csv", body, "text/csv")
//	url := disk.URL("reports/revenue-monthly.csv")
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get for a missing path.
var ErrNotFound = errors.New("storage: file not found")

// Disk is the driver interface.
type Disk interface {
	// Put writes r to path, replacing any existing content.
	Put(ctx context.Context, path string, r io.Reader, contentType string) error

	// Get returns the full content of path.
	Get(ctx context.Context, path string) ([]byte, error)

	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes path. A missing path is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
