package utils

import (
	"fmt"

	"stayhub/config"
	"stayhub/services/storage"
)

// NewStorageService builds the photo storage backend selected by config.
func NewStorageService() (storage.Service, error) {
	cfg := config.AppConfig
	switch cfg.StorageBackend {
	case "cloudinary":
		return storage.NewCloudinaryService(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case "local", "":
		return storage.NewLocalService(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
