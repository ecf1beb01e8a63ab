package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	avatarPathPrefix = "avatars"
	sniffLen         = 512
)

var (
	ErrFileTooBig         = errors.New("file size exceeds upload limit")
	ErrInvalidFileType    = errors.New("invalid file type, only JPEG and PNG images are allowed")
	ErrUploadFailed       = errors.New("failed to upload file")
	ErrDeleteFailed       = errors.New("failed to delete file")
	ErrImageNotFound      = errors.New("image not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to resource")

	allowedContentTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
	}
)

// ImageLocation tells the uploads handler where an image lives. Exactly one
// of FilePath (served directly) or URL (redirect target) is set.
type ImageLocation struct {
	FilePath    string
	URL         string
	ContentType string
}

// sniffImage reads the first bytes of file to detect the real content type
// and returns a reader that replays them.
func sniffImage(file io.Reader) (io.Reader, string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("%w: read file for content detection: %v", ErrUploadFailed, err)
	}
	buf = buf[:n]
	detected := strings.ToLower(strings.TrimSpace(http.DetectContentType(buf)))
	if _, ok := allowedContentTypes[detected]; !ok {
		return nil, "", ErrInvalidFileType
	}
	return io.MultiReader(bytes.NewReader(buf), file), detected, nil
}

func newAvatarKey(userID uint, contentType string) string {
	return fmt.Sprintf("%s/user-%d/%s%s", avatarPathPrefix, userID, uuid.New().String(), contentTypeToExtension(contentType))
}

// checkAvatarKey rejects traversal and keys outside the user's namespace.
func checkAvatarKey(userID uint, key string) error {
	if strings.Contains(key, "..") {
		return ErrUnauthorizedAccess
	}
	if !strings.HasPrefix(key, fmt.Sprintf("%s/user-%d/", avatarPathPrefix, userID)) {
		return ErrUnauthorizedAccess
	}
	return nil
}

func validPublicKey(key string) bool {
	return key != "" && !strings.Contains(key, "..") && strings.HasPrefix(key, avatarPathPrefix+"/")
}

func contentTypeToExtension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	default:
		return ""
	}
}

func extensionToContentType(key string) string {
	switch {
	case strings.HasSuffix(key, ".jpg"):
		return "image/jpeg"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
