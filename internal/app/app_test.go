package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

func TestShutdownClosesResources(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:app_shutdown?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	a := New(
		&config.Config{ShutdownTimeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		&http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second},
		&observability.Runtime{},
		db,
		client,
		nil,
	)
	a.Shutdown(context.Background())

	sqlDB, _ := db.DB()
	if err := sqlDB.Ping(); err == nil {
		t.Fatal("expected database to be closed")
	}
	if err := client.Ping(context.Background()).Err(); err == nil {
		t.Fatal("expected redis client to be closed")
	}
}

func TestRunReturnsAfterContextCancel(t *testing.T) {
	a := New(
		&config.Config{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		&http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second},
		nil, nil, nil, nil,
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestTimeoutFallsBackWhenUnset(t *testing.T) {
	a := &App{Config: &config.Config{ShutdownHTTPDrainTimeout: 3 * time.Second}}
	if got := a.timeout(func(c *config.Config) time.Duration { return c.ShutdownHTTPDrainTimeout }, time.Second); got != 3*time.Second {
		t.Fatalf("expected configured timeout, got %v", got)
	}
	if got := a.timeout(func(c *config.Config) time.Duration { return c.ShutdownTimeout }, 7*time.Second); got != 7*time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
}
