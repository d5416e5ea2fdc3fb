package storage

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks tour-catalog/internal/storage MediaStore,FileRemover

// UploadResult identifies a stored media object.
type UploadResult struct {
	URL      string
	PublicID string
}

// MediaStore defines the operations the catalog needs from the media store.
type MediaStore interface {
	// Upload stores data under key and returns its URL and identifier.
	Upload(ctx context.Context, key string, data []byte, contentType string) (*UploadResult, error)
	// Destroy deletes the object with the given identifier.
	Destroy(ctx context.Context, publicID string) error
}

// FileRemover deletes media that was saved on the local filesystem.
type FileRemover interface {
	// Remove deletes path when it names an existing local file.
	// It reports whether a file was removed.
	Remove(path string) (bool, error)
}

// Ensure implementations satisfy the interfaces
var (
	_ MediaStore  = (*S3Client)(nil)
	_ FileRemover = (*LocalFiles)(nil)
)
