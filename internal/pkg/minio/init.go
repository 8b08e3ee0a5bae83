package minio

import (
	"context"
	"fmt"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client is the global MinIO client instance.
	Client *minio.Client
	// Bucket holds all media objects.
	Bucket string
	// Folder is the logical folder prefix under which objects are keyed.
	Folder string
)

// Init connects the MinIO client and verifies the bucket exists.
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	Client = client
	Bucket = cfg.Bucket
	Folder = cfg.Folder
	if Folder == "" {
		Folder = consts.UploadFolder
	}
	return nil
}
