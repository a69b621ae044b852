package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"mural-backend/internal/utils"
)

// Storage persists uploaded binaries under flat, server-generated names.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

// NewFromEnv builds the storage driver selected by STORAGE_DRIVER.
// "local" (the default) stores files in UPLOAD_DIR on disk; "s3" stores them
// in a MinIO/S3 bucket.
func NewFromEnv() (Storage, string, error) {
	driver := utils.GetEnv("STORAGE_DRIVER", "local")

	switch driver {
	case "local":
		store, err := NewLocalStorage(utils.GetEnv("UPLOAD_DIR", "uploads"))
		if err != nil {
			return nil, driver, err
		}
		log.Println("Using local upload storage")
		return store, driver, nil
	case "s3":
		store, err := NewMinioStorageFromEnv()
		if err != nil {
			return nil, driver, err
		}
		log.Println("Using S3 upload storage")
		return store, driver, nil
	default:
		return nil, driver, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
