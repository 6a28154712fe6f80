package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/observability"
)

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnAttempt(_ context.Context, style string, attempt int) {
	h.logger.Debug("attempt", "style", style, "n", attempt)
}

func (h logHooks) OnReject(_ context.Context, style string, attempt int, reason string) {
	h.logger.Debug("rejected", "style", style, "n", attempt, "reason", reason)
}

func (h logHooks) OnAccept(_ context.Context, style string, attempts int, exhausted bool, d time.Duration) {
	h.logger.Debug("accepted", "style", style, "attempts", attempts, "exhausted", exhausted, "duration", d)
}

func (h logHooks) OnSampleStart(_ context.Context, objects, samples int) {
	h.logger.Debug("sampling", "objects", objects, "samples", samples)
}

func (h logHooks) OnSampleComplete(_ context.Context, _, _ int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("sampling failed", "error", err)
		return
	}
	h.logger.Debug("sampled", "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

// RegisterDebugHooks routes generation, sampling and cache events to logger.
func RegisterDebugHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetGenerationHooks(h)
	observability.SetSampleHooks(h)
	observability.SetCacheHooks(h)
}
