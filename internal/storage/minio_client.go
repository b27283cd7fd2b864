package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"portfolio-service/internal/config"
)

// NewMinioClient initializes a MinIO client and ensures the bucket exists.
func NewMinioClient(cfg *config.Config) (*minio.Client, error) {
	// Initialize MinIO client
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSSL,
	})
	if err != nil {
		return nil, err
	}
	// Ensure the bucket exists (create if not present)
	ctx := context.Background()
	exists, errBucket := minioClient.BucketExists(ctx, cfg.MinioBucket)
	if errBucket != nil {
		return nil, errBucket
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: ""})
		if err != nil {
			return nil, err
		}
		log.Printf("Created bucket %s\n", cfg.MinioBucket)
	}
	return minioClient, nil
}

// MinioUploader stores media objects in a MinIO bucket and resolves their
// public URLs. Objects are written once and never deleted by this service.
type MinioUploader struct {
	Client  *minio.Client
	Bucket  string
	baseURL string
}

// NewMinioUploader creates a MinioUploader for the configured bucket.
func NewMinioUploader(client *minio.Client, cfg *config.Config) *MinioUploader {
	scheme := "http"
	if cfg.MinioSSL {
		scheme = "https"
	}
	return &MinioUploader{
		Client:  client,
		Bucket:  cfg.MinioBucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket),
	}
}

// Upload writes data under the given key and returns the object's public URL.
func (u *MinioUploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := u.Client.PutObject(
		ctx,
		u.Bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to MinIO")
	}
	return u.baseURL + "/" + key, nil
}
