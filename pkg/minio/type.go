package minio

import (
	miniogo "github.com/minio/minio-go/v7"

	"ujenzi-notify/pkg/log"
)

// implMinIO implements IMinIO over a connected MinIO client.
type implMinIO struct {
	l      log.Logger
	client *miniogo.Client
	bucket string
}
