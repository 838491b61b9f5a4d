package domain

import (
	"context"
)

// FileRepository defines the interface for image storage operations
type FileRepository interface {
	// Upload saves an image and returns its public URL
	Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error)
	// Delete removes a previously uploaded image by its object key
	Delete(ctx context.Context, key string) error
}
