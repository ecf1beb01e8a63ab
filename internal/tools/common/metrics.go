package common

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

const metricsFlushTimeout = 5 * time.Second

// StartToolMetrics exports tool metrics for one command when OTel metrics are
// enabled. The returned func flushes and is a no-op otherwise.
func StartToolMetrics(ctx context.Context, cfg *config.Config) func() {
	if cfg == nil || !cfg.OTELMetricsEnabled {
		return func() {}
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	res, err := observability.ServiceResource(ctx, cfg)
	if err != nil {
		return func() {}
	}
	mp, err := observability.InitMetrics(ctx, cfg, quiet, res)
	if err != nil {
		return func() {}
	}
	return func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), metricsFlushTimeout)
		defer cancel()
		_ = mp.Shutdown(flushCtx)
	}
}
