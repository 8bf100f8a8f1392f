package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/manivarun57/support-portal/config"
)

// RemoteStore uploads attachments to an S3-compatible bucket and returns a
// publicly addressable https://<bucket>.<endpoint>/<key> URL.
type RemoteStore struct {
	client   *minioSDK.Client
	bucket   string
	endpoint string
	maxSize  int64
}

// NewRemoteStore connects to the object store and ensures the bucket exists.
func NewRemoteStore(ctx context.Context, cfg config.Config) (*RemoteStore, error) {
	client, err := minioSDK.New(cfg.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinioBucket, err)
		}
		slog.Info("bucket created", "bucket", cfg.MinioBucket)
	}

	return &RemoteStore{
		client:   client,
		bucket:   cfg.MinioBucket,
		endpoint: cfg.MinioEndpoint,
		maxSize:  cfg.MaxFileSize,
	}, nil
}

func (s *RemoteStore) Store(ctx context.Context, blob, filename, contentType string) (string, int64, error) {
	data, err := DecodeBlob(blob, s.maxSize)
	if err != nil {
		return "", 0, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := ObjectKey(filename)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minioSDK.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", 0, fmt.Errorf("object upload failed: %w", err)
	}

	url := fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
	slog.Info("uploaded attachment to object storage", "bucket", s.bucket, "key", key, "size", len(data))
	return url, int64(len(data)), nil
}
