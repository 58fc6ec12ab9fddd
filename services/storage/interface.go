package storage

import (
	"context"
	"mime/multipart"
)

// StorageService handles image uploads for services and portfolio entries.
type StorageService interface {
	UploadImage(ctx context.Context, file multipart.File, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
	ImageURL(publicID string) (string, error)
}
