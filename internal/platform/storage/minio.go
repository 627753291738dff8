package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore is a MediaStore backed by a MinIO (or any S3-compatible) server.
type MinioStore struct {
	client       *minio.Client
	bucket       string
	mediaBaseURL string
}

// MinioConfig holds the settings needed to reach the object store.
type MinioConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UseSSL       bool
	MediaBaseURL string
}

// NewMinioStore connects to the object store and ensures the media bucket
// exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
	}

	baseURL := cfg.MediaBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{
		client:       client,
		bucket:       cfg.Bucket,
		mediaBaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put uploads the object and returns the URL clients can fetch it from.
func (s *MinioStore) Put(ctx context.Context, key string, contentType string, size int64, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return s.mediaBaseURL + "/" + key, nil
}
