package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, data []byte, contentType, bucketName, objectName string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	BucketExists(ctx context.Context, bucketName string) error
}
