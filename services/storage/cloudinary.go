package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"jojocolaresbeauty/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService implements StorageService backed by Cloudinary.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService initializes the Cloudinary client from configuration.
func NewCloudinaryService() (*CloudinaryService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads an image into the given folder and returns its public ID.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned by Cloudinary")
	}
	return result.PublicID, nil
}

// DeleteImage removes an image by its public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// ImageURL builds the public delivery URL for an uploaded image.
func (s *CloudinaryService) ImageURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build image URL: %w", err)
	}
	return url, nil
}
