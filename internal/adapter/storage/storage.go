// Package storage keeps uploaded document content in a blob store. Two
// drivers exist: a local directory and S3 (or an S3-compatible endpoint).
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/buildline/crm-backend/internal/config"
)

// Store writes and reads blobs by key.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocal(cfg.LocalDir)
	case config.StorageDriverS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
