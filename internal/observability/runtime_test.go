package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
)

func TestInitRuntimeAllSignalsDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{OTELServiceName: "volunteer-api", OTELEnvironment: "test"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rt, err := InitRuntime(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("init runtime: %v", err)
	}
	if rt.LoggerProvider != nil {
		t.Fatal("expected no logger provider when otel logs are disabled")
	}
	if rt.MeterProvider == nil || rt.TracerProvider == nil {
		t.Fatalf("expected noop meter and tracer providers, got %+v", rt)
	}
	attrs := map[attribute.Key]string{}
	for _, kv := range rt.Resource.Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	if attrs["service.name"] != "volunteer-api" || attrs["service.namespace"] != serviceNamespace || attrs["deployment.environment"] != "test" {
		t.Fatalf("unexpected resource attributes %v", attrs)
	}
	if err := rt.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	var nilRuntime *Runtime
	if err := nilRuntime.Shutdown(ctx); err != nil {
		t.Fatalf("nil runtime shutdown: %v", err)
	}
}

func TestStoreAndStorageSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	_, span := StartStoreSpan(context.Background(), "sqlite", "create_user")
	EndSpan(span, nil)
	_, failed := StartStorageSpan(context.Background(), "minio", "store", 7)
	EndSpan(failed, errors.New("bucket unavailable"))

	ended := recorder.Ended()
	if len(ended) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(ended))
	}
	store := ended[0]
	if store.Name() != "profile_store.create_user" || store.Status().Code == codes.Error {
		t.Fatalf("unexpected store span %s %v", store.Name(), store.Status())
	}
	if !hasAttr(store.Attributes(), "db.system", "sqlite") {
		t.Fatalf("expected db.system attribute, got %v", store.Attributes())
	}
	storage := ended[1]
	if storage.Name() != "profile_image.store" || storage.Status().Code != codes.Error || len(storage.Events()) == 0 {
		t.Fatalf("expected failed storage span with error event, got %s %v", storage.Name(), storage.Status())
	}
	if !hasAttr(storage.Attributes(), "storage.backend", "minio") {
		t.Fatalf("expected storage.backend attribute, got %v", storage.Attributes())
	}
}

func hasAttr(attrs []attribute.KeyValue, key, want string) bool {
	for _, kv := range attrs {
		if string(kv.Key) == key && kv.Value.Emit() == want {
			return true
		}
	}
	return false
}
