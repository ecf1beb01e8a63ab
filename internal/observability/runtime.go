package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"

	"go.opentelemetry.io/otel/attribute"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceNamespace = "volunteer-management"

// Runtime owns the three OTel providers of the API process. They share one
// resource so logs, metrics and traces carry identical service attributes.
type Runtime struct {
	Resource       *sdkresource.Resource
	LoggerProvider *sdklog.LoggerProvider
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
	logger         *slog.Logger
}

// ServiceResource describes this process to every OTel signal.
func ServiceResource(ctx context.Context, cfg *config.Config) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", cfg.OTELServiceName),
		attribute.String("service.namespace", serviceNamespace),
		attribute.String("deployment.environment", cfg.OTELEnvironment),
	}
	res, err := sdkresource.New(ctx, sdkresource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}
	return res, nil
}

func InitRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	res, err := ServiceResource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{Resource: res, logger: logger}
	if rt.LoggerProvider, err = InitLogs(ctx, cfg, logger, res); err != nil {
		return nil, err
	}
	if rt.MeterProvider, err = InitMetrics(ctx, cfg, logger, res); err != nil {
		_ = rt.Shutdown(ctx)
		return nil, err
	}
	if rt.TracerProvider, err = InitTracing(ctx, cfg, logger, res); err != nil {
		_ = rt.Shutdown(ctx)
		return nil, err
	}
	return rt, nil
}

type shutdownStep struct {
	name string
	run  func(context.Context) error
}

// Shutdown flushes traces and metrics before logs so records emitted while
// exporters drain are still delivered. Every step runs even if one fails.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var steps []shutdownStep
	if r.TracerProvider != nil {
		steps = append(steps, shutdownStep{"tracer", r.TracerProvider.Shutdown})
	}
	if r.MeterProvider != nil {
		steps = append(steps, shutdownStep{"meter", r.MeterProvider.Shutdown})
	}
	if r.LoggerProvider != nil {
		steps = append(steps, shutdownStep{"logger", r.LoggerProvider.Shutdown})
	}

	var errs []error
	for _, step := range steps {
		start := time.Now()
		err := step.run(ctx)
		if r.logger != nil && step.name != "logger" {
			r.logger.Info("otel provider shutdown", "provider", step.name, "duration_ms", time.Since(start).Milliseconds(), "ok", err == nil)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s provider: %w", step.name, err))
		}
	}
	return errors.Join(errs...)
}
