package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

const (
	presignedURLTTL   = 15 * time.Minute
	bucketInitTimeout = 10 * time.Second
)

var ErrBucketCreationFailed = errors.New("failed to create storage bucket")

// MinIOImageStorage keeps profile pictures in an S3-compatible bucket.
type MinIOImageStorage struct {
	client     *minio.Client
	bucketName string
	maxBytes   int64

	ensureBucket func(context.Context) error
	initMu       sync.Mutex
	ready        bool
}

// NewMinIOImageStorage creates a MinIO-backed image store.
// Bucket creation is deferred until the first operation to avoid blocking app startup.
func NewMinIOImageStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool, maxBytes int64) (*MinIOImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	s := &MinIOImageStorage{client: client, bucketName: bucketName, maxBytes: maxBytes}
	s.ensureBucket = s.ensureBucketExists
	return s, nil
}

func (s *MinIOImageStorage) Backend() string { return "minio" }

// Ping checks bucket reachability for readiness probes.
func (s *MinIOImageStorage) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucketName)
	return err
}

// lazyInit remembers success only, so a failed check is retried by the next
// call. The check is detached from the caller's cancellation.
func (s *MinIOImageStorage) lazyInit(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.ready {
		return nil
	}
	initCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bucketInitTimeout)
	defer cancel()
	if err := s.ensureBucket(initCtx); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *MinIOImageStorage) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("%w: check bucket existence: %v", ErrBucketCreationFailed, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("%w: create bucket: %v", ErrBucketCreationFailed, err)
		}
	}
	return nil
}

// StoreProfileImage validates size and sniffed type before touching MinIO.
func (s *MinIOImageStorage) StoreProfileImage(ctx context.Context, userID uint, file io.Reader, size int64) (_ string, err error) {
	ctx, span := observability.StartStorageSpan(ctx, s.Backend(), "store", userID)
	defer func() { observability.EndSpan(span, err) }()

	if s.maxBytes > 0 && size > s.maxBytes {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "too_large")
		return "", ErrFileTooBig
	}
	body, contentType, err := sniffImage(file)
	if err != nil {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "rejected")
		return "", err
	}
	if err := s.lazyInit(ctx); err != nil {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "error")
		return "", err
	}

	key := newAvatarKey(userID, contentType)
	_, err = s.client.PutObject(ctx, s.bucketName, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"User-ID":     fmt.Sprintf("%d", userID),
			"Uploaded-At": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "error")
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	observability.RecordProfileImageUpload(ctx, s.Backend(), "success")
	return key, nil
}

func (s *MinIOImageStorage) DeleteProfileImage(ctx context.Context, userID uint, key string) (err error) {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	ctx, span := observability.StartStorageSpan(ctx, s.Backend(), "delete", userID)
	defer func() { observability.EndSpan(span, err) }()

	if err := checkAvatarKey(userID, key); err != nil {
		return err
	}
	if err := s.lazyInit(ctx); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// Locate returns a short-lived presigned GET URL for key.
func (s *MinIOImageStorage) Locate(ctx context.Context, key string) (ImageLocation, error) {
	if !validPublicKey(key) {
		return ImageLocation{}, ErrImageNotFound
	}
	if err := s.lazyInit(ctx); err != nil {
		return ImageLocation{}, err
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucketName, key, presignedURLTTL, url.Values{})
	if err != nil {
		return ImageLocation{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return ImageLocation{URL: u.String(), ContentType: extensionToContentType(key)}, nil
}
