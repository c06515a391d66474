package storage

import (
	"context"
	"fmt"
	"io"

	"vidhub/domain/repository"
	"vidhub/infrastructure/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore is a MinIO-backed implementation of the media boundary.
type MediaStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMediaStore connects to the object store and ensures the bucket exists.
func NewMediaStore(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (repository.IMediaStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.GetLogger().WithField("bucket", bucket).Info("Created media bucket")
	}

	return &MediaStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

func (s *MediaStore) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":  err,
			"object": objectName,
		}).Error("media store upload failed")
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}
