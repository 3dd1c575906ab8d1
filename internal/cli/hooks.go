package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/observability"
)

// debugHooks logs pipeline and cache events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func installDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h debugHooks) OnNormalizeComplete(_ context.Context, parties int, d time.Duration, err error) {
	h.logger.Debug("normalized", "parties", parties, "duration", d, "error", err)
}

func (h debugHooks) OnLayoutStart(_ context.Context, totalSeats int) {
	h.logger.Debug("layout started", "seats", totalSeats)
}

func (h debugHooks) OnLayoutComplete(_ context.Context, rows int, d time.Duration, err error) {
	h.logger.Debug("layout complete", "rows", rows, "duration", d, "error", err)
}

func (h debugHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render complete", "formats", formats, "duration", d, "error", err)
}

func (h debugHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h debugHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h debugHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
