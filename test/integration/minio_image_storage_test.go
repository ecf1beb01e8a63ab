//go:build integration

package integration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

var pngFixture = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func TestMinIOImageStorageStoreLocateDelete(t *testing.T) {
	env := newMinIOIntegrationEnv(t, 1<<20)
	ctx := context.Background()

	if err := env.storage.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	key, err := env.storage.StoreProfileImage(ctx, 42, bytes.NewReader(pngFixture), int64(len(pngFixture)))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasPrefix(key, "avatars/user-42/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected object key %q", key)
	}

	info := env.mustStatObject(t, key)
	if info.ContentType != "image/png" {
		t.Fatalf("expected image/png content type, got %q", info.ContentType)
	}
	if info.UserMetadata["User-Id"] != "42" && info.UserMetadata["User-ID"] != "42" {
		t.Fatalf("expected user metadata on object, got %#v", info.UserMetadata)
	}

	loc, err := env.storage.Locate(ctx, key)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.URL == "" || loc.ContentType != "image/png" {
		t.Fatalf("unexpected location %#v", loc)
	}
	resp, err := http.Get(loc.URL)
	if err != nil {
		t.Fatalf("fetch presigned url: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.Equal(body, pngFixture) {
		t.Fatalf("presigned fetch: status=%d len=%d", resp.StatusCode, len(body))
	}

	if err := env.storage.DeleteProfileImage(ctx, 7, key); !errors.Is(err, service.ErrUnauthorizedAccess) {
		t.Fatalf("expected foreign delete to be refused, got %v", err)
	}
	if !env.mustObjectExists(t, key) {
		t.Fatal("object removed by foreign delete")
	}
	if err := env.storage.DeleteProfileImage(ctx, 42, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if env.mustObjectExists(t, key) {
		t.Fatal("object still present after delete")
	}
}

func TestMinIOImageStorageRejectsBeforeUpload(t *testing.T) {
	env := newMinIOIntegrationEnv(t, 16)
	ctx := context.Background()

	if _, err := env.storage.StoreProfileImage(ctx, 1, bytes.NewReader(pngFixture), int64(len(pngFixture))); !errors.Is(err, service.ErrFileTooBig) {
		t.Fatalf("expected ErrFileTooBig, got %v", err)
	}
	gif := []byte("GIF89a\x01\x00\x01\x00")
	if _, err := env.storage.StoreProfileImage(ctx, 1, bytes.NewReader(gif), int64(len(gif))); !errors.Is(err, service.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	if _, err := env.storage.Locate(ctx, "other/../secret.png"); !errors.Is(err, service.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound for foreign key, got %v", err)
	}
}

func TestMinIOImageStorageRecoversFromCancelledFirstCall(t *testing.T) {
	env := newMinIOIntegrationEnv(t, 1<<20)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, _ = env.storage.Locate(cancelled, "avatars/user-1/missing.png")

	loc, err := env.storage.Locate(context.Background(), "avatars/user-1/missing.png")
	if err != nil {
		t.Fatalf("expected locate to work after a cancelled call, got %v", err)
	}
	if loc.URL == "" {
		t.Fatal("expected presigned url")
	}
}
