package storage

import (
	"context"
	"io"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

var (
	minioStorageInstance contracts.StorageService
	onceMinioStorage     sync.Once
)

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.StorageService {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return objectName, nil
}
