package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

// LocalImageStorage writes profile pictures below a directory on disk.
type LocalImageStorage struct {
	root     string
	maxBytes int64
}

func NewLocalImageStorage(root string, maxBytes int64) (*LocalImageStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStorage{root: abs, maxBytes: maxBytes}, nil
}

func (s *LocalImageStorage) Backend() string { return "local" }

func (s *LocalImageStorage) Root() string { return s.root }

// Ping reports whether the upload directory is still usable.
func (s *LocalImageStorage) Ping(context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.root)
	}
	return nil
}

func (s *LocalImageStorage) StoreProfileImage(ctx context.Context, userID uint, file io.Reader, size int64) (string, error) {
	if s.maxBytes > 0 && size > s.maxBytes {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "too_large")
		return "", ErrFileTooBig
	}
	body, contentType, err := sniffImage(file)
	if err != nil {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "rejected")
		return "", err
	}

	key := newAvatarKey(userID, contentType)
	if err := s.write(key, body); err != nil {
		observability.RecordProfileImageUpload(ctx, s.Backend(), "error")
		return "", err
	}
	observability.RecordProfileImageUpload(ctx, s.Backend(), "success")
	return key, nil
}

// write copies into a temp file next to the target and renames it, so a
// partially written image is never visible under its final name.
func (s *LocalImageStorage) write(key string, body io.Reader) error {
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer os.Remove(tmp.Name())

	limit := s.maxBytes
	if limit <= 0 {
		limit = 1<<63 - 1
	}
	n, err := io.Copy(tmp, io.LimitReader(body, limit+1))
	closeErr := tmp.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, closeErr)
	}
	if n > limit {
		return ErrFileTooBig
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return nil
}

func (s *LocalImageStorage) DeleteProfileImage(_ context.Context, userID uint, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	if err := checkAvatarKey(userID, key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func (s *LocalImageStorage) Locate(_ context.Context, key string) (ImageLocation, error) {
	if !validPublicKey(key) {
		return ImageLocation{}, ErrImageNotFound
	}
	p := s.path(key)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return ImageLocation{}, ErrImageNotFound
	}
	return ImageLocation{FilePath: p, ContentType: extensionToContentType(key)}, nil
}

func (s *LocalImageStorage) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
