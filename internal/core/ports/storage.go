// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
	"time"
)

// ImageStore serves part images from object storage.
type ImageStore interface {
	// PresignedURL returns a time-limited GET URL for an image key.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Upload stores an image; used by the seeder.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	// Exists reports whether an image key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
