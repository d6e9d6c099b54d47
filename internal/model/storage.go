package model

import (
	"context"
	"io"
	"time"
)

// ArchiveStore keeps exported conversation dumps in object storage.
type ArchiveStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, fileName string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
