package minio

import (
	"bytes"
	"context"
	"fmt"

	miniogo "github.com/minio/minio-go/v7"

	"ujenzi-notify/pkg/log"
)

// IMinIO archives raw payload blobs to object storage.
type IMinIO interface {
	// Put stores data under key. Existing objects with the same key are
	// overwritten.
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// New builds an archive over a connected MinIO client and bucket.
func New(l log.Logger, client *miniogo.Client, bucket string) (IMinIO, error) {
	if client == nil {
		return nil, ErrClientRequired
	}
	if bucket == "" {
		return nil, ErrBucketRequired
	}
	return &implMinIO{
		l:      l,
		client: client,
		bucket: bucket,
	}, nil
}

func (m *implMinIO) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), miniogo.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", key, err)
	}

	return nil
}
