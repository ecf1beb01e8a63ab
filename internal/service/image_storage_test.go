package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestSniffImage(t *testing.T) {
	body, ct, err := sniffImage(bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("sniff png: %v", err)
	}
	if ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	replayed, err := io.ReadAll(body)
	if err != nil || !bytes.Equal(replayed, pngHeader) {
		t.Fatalf("expected sniffed bytes to be replayed, err=%v", err)
	}

	if _, _, err := sniffImage(strings.NewReader("GIF89a......")); !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType for gif, got %v", err)
	}
	if _, _, err := sniffImage(strings.NewReader("<html></html>")); !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType for html, got %v", err)
	}
}

func TestCheckAvatarKey(t *testing.T) {
	if err := checkAvatarKey(3, "avatars/user-3/a.png"); err != nil {
		t.Fatalf("expected own key to pass, got %v", err)
	}
	for _, key := range []string{"avatars/user-4/a.png", "avatars/user-3/../user-4/a.png", "other/a.png", "avatars/user-33/a.png"} {
		if err := checkAvatarKey(3, key); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess for %q, got %v", key, err)
		}
	}
}

func TestLocalImageStorageLifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalImageStorage(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	key, err := store.StoreProfileImage(ctx, 7, bytes.NewReader(pngHeader), int64(len(pngHeader)))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasPrefix(key, "avatars/user-7/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected key %q", key)
	}

	loc, err := store.Locate(ctx, key)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.ContentType != "image/png" || loc.URL != "" {
		t.Fatalf("unexpected location %+v", loc)
	}
	data, err := os.ReadFile(loc.FilePath)
	if err != nil || !bytes.Equal(data, pngHeader) {
		t.Fatalf("stored bytes mismatch err=%v", err)
	}
	tmps, _ := filepath.Glob(filepath.Join(filepath.Dir(loc.FilePath), ".upload-*"))
	if len(tmps) != 0 {
		t.Fatalf("expected temp files to be cleaned up, got %v", tmps)
	}

	if err := store.DeleteProfileImage(ctx, 8, key); !errors.Is(err, ErrUnauthorizedAccess) {
		t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
	}
	if err := store.DeleteProfileImage(ctx, 7, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Locate(ctx, key); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound after delete, got %v", err)
	}
	if err := store.DeleteProfileImage(ctx, 7, key); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestLocalImageStorageRejects(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalImageStorage(t.TempDir(), 8)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	if _, err := store.StoreProfileImage(ctx, 1, bytes.NewReader(pngHeader), int64(len(pngHeader))); !errors.Is(err, ErrFileTooBig) {
		t.Fatalf("expected ErrFileTooBig from declared size, got %v", err)
	}
	if _, err := store.StoreProfileImage(ctx, 1, bytes.NewReader(pngHeader), 4); !errors.Is(err, ErrFileTooBig) {
		t.Fatalf("expected ErrFileTooBig from actual size, got %v", err)
	}
	if _, err := store.StoreProfileImage(ctx, 1, strings.NewReader("text"), 4); !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	for _, key := range []string{"", "../etc/passwd", "avatars/../secret", "notes/a.txt"} {
		if _, err := store.Locate(ctx, key); !errors.Is(err, ErrImageNotFound) {
			t.Fatalf("expected ErrImageNotFound for %q, got %v", key, err)
		}
	}
}
