package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"translator-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService stores audio objects in a MinIO/S3 bucket.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.Bucket,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s/*"]
			}
		]
	}`, s.bucket, AudioDirectory)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read for audio")
	return nil
}

func (s *MinIOService) Put(ctx context.Context, ref string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectPath(ref), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", ref).Error("Failed to upload audio")
		return fmt.Errorf("failed to upload audio: %w", err)
	}
	return nil
}

func (s *MinIOService) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	objectPath := s.objectPath(ref)

	// GetObject is lazy, so stat first to report a missing object up front.
	if _, err := s.client.StatObject(ctx, s.bucket, objectPath, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil, ErrAudioNotFound
		}
		return nil, fmt.Errorf("failed to stat audio: %w", err)
	}

	object, err := s.client.GetObject(ctx, s.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	return object, nil
}

func (s *MinIOService) Delete(ctx context.Context, ref string) error {
	objectPath := s.objectPath(ref)

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	switch {
	case err == nil:
		s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
		return nil
	case isNoSuchKey(err):
		s.logger.WithField("objectPath", objectPath).Debug("File already absent from MinIO")
		return nil
	default:
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
}

func (s *MinIOService) List(ctx context.Context, prefix string) ([]StoredObject, error) {
	prefix = strings.TrimSuffix(s.objectPath(prefix), "/") + "/"

	var objects []StoredObject
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		objects = append(objects, StoredObject{
			Ref:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return objects, nil
}

func (s *MinIOService) URL(ref string) string {
	return publicObjectURL(s.publicURL, s.bucket, s.objectPath(ref))
}

// objectPath maps a stored reference such as "audio/<uuid>.mp3" to its object key.
func (s *MinIOService) objectPath(ref string) string {
	ref = strings.TrimPrefix(ref, "/")
	return strings.TrimPrefix(ref, s.bucket+"/")
}

func publicObjectURL(publicURL, bucket, objectPath string) string {
	publicBase := strings.TrimPrefix(publicURL, "https://")
	publicBase = strings.TrimPrefix(publicBase, "http://")

	if idx := strings.Index(publicBase, "/"); idx != -1 {
		publicBase = publicBase[:idx]
	}

	protocol := "http://"
	if strings.Contains(publicURL, "https://") {
		protocol = "https://"
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, publicBase, bucket, objectPath)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
