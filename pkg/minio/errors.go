package minio

import "errors"

var (
	// ErrBucketRequired is returned when no bucket name is configured.
	ErrBucketRequired = errors.New("minio bucket name is required")
	// ErrClientRequired is returned when no connected client is supplied.
	ErrClientRequired = errors.New("minio client is required")
)
