package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/csvgrid/pkg/observability"
)

// debugHooks reports pipeline and cache events at debug level, so -v shows
// what each stage did.
type debugHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	logger *log.Logger
}

func registerDebugHooks(logger *log.Logger) {
	h := &debugHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h *debugHooks) OnLayout(_ context.Context, rows, columns int, d time.Duration) {
	h.logger.Debug("laid out grid", "rows", rows, "columns", columns, "duration", d)
}

func (h *debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}
