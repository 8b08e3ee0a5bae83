package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Store adapts the package client to the service layer's ObjectStore
// interface.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Upload streams an object into the bucket under the configured folder
// and returns the final object key.
func (Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", errors.New("minio client is not initialized")
	}

	key := Folder + "/" + objectName
	uploadInfo, err := Client.PutObject(ctx, Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file")
	}

	return uploadInfo.Key, nil
}

// Remove deletes an object by its stored key. A returned error means
// the remote delete did not report success.
func (Store) Remove(ctx context.Context, objectName string) error {
	if Client == nil {
		return errors.New("minio client is not initialized")
	}

	if err := Client.RemoveObject(ctx, Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to delete file")
	}

	return nil
}

// PublicURL constructs the public access URL for an object key.
func (Store) PublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, Bucket, objectName)
}
