package observability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	storeSpanPrefix   = "profile_store."
	storageSpanPrefix = "profile_image."
)

// Tracer returns the service tracer from the globally installed provider.
func Tracer() trace.Tracer {
	return otel.Tracer(meterName)
}

// StartStoreSpan opens a client span for one Profile Store operation.
func StartStoreSpan(ctx context.Context, dbSystem, op string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, storeSpanPrefix+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", dbSystem),
			attribute.String("store.operation", op),
		),
	)
}

// StartStorageSpan opens a client span for one profile image object call.
func StartStorageSpan(ctx context.Context, backend, op string, userID uint) (context.Context, trace.Span) {
	return Tracer().Start(ctx, storageSpanPrefix+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("storage.backend", backend),
			attribute.Int64("user.id", int64(userID)),
		),
	)
}

// EndSpan marks the span failed when err is non-nil, then ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// InitTracing installs the tracer provider. With tracing disabled a
// never-sampling provider is installed instead.
func InitTracing(ctx context.Context, cfg *config.Config, logger *slog.Logger, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	otel.SetTextMapPropagator(newPropagator())
	if !cfg.OTELTracingEnabled {
		tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res), sdktrace.WithSampler(sdktrace.NeverSample()))
		otel.SetTracerProvider(tp)
		logger.Info("otel tracing disabled")
		return tp, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OTELTraceSamplingRatio))),
	)
	otel.SetTracerProvider(tp)
	logger.Info("otel tracing initialized", "endpoint", cfg.OTELExporterOTLPEndpoint, "sampling_ratio", cfg.OTELTraceSamplingRatio)
	return tp, nil
}
