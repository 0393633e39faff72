package repositories

import (
	"log"

	"github.com/Lassehoutenbos/PartManager/internal/config"
	"github.com/Lassehoutenbos/PartManager/internal/storage"
)

// Files holds the attachment blobs for the process, local disk by default.
var Files storage.Store

func InitStorage() {
	cfg := config.Envs

	switch cfg.StorageDriver {
	case "s3":
		Files = storage.NewS3Store(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BucketName,
			cfg.S3.Region,
			cfg.S3.Endpoint,
		)
	default:
		store, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to initialize upload directory:", err)
		}
		Files = store
	}
}
