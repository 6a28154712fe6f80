// Package observability lets applications observe board generation without
// the libraries depending on any metrics or tracing backend.
//
// Hooks are registered once at startup and read by the libraries:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries emit events through the accessors:
//
//	observability.Generation().OnAttempt(ctx, style, attempt)
//	// ... generate and measure ...
//	observability.Generation().OnReject(ctx, style, attempt, reason)
//
// Every hook set has a no-op default, so emitting is always safe.
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerationHooks receives events from the generate-measure-accept loop.
type GenerationHooks interface {
	// OnAttempt fires before each board is generated. attempt starts at 0.
	OnAttempt(ctx context.Context, style string, attempt int)

	// OnReject fires when a board fails the acceptance constraints.
	OnReject(ctx context.Context, style string, attempt int, reason string)

	// OnAccept fires once per round with the board that was kept.
	// exhausted is true when the board was kept only because retries ran out.
	OnAccept(ctx context.Context, style string, attempts int, exhausted bool, duration time.Duration)
}

// SampleHooks receives events from the area sampler.
type SampleHooks interface {
	OnSampleStart(ctx context.Context, objects, cells int)
	OnSampleComplete(ctx context.Context, objects, cells int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and latency.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnAttempt(context.Context, string, int)                     {}
func (NoopGenerationHooks) OnReject(context.Context, string, int, string)              {}
func (NoopGenerationHooks) OnAccept(context.Context, string, int, bool, time.Duration) {}

// NoopSampleHooks is a no-op implementation of SampleHooks.
type NoopSampleHooks struct{}

func (NoopSampleHooks) OnSampleStart(context.Context, int, int)                          {}
func (NoopSampleHooks) OnSampleComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	sampleHooks     SampleHooks     = NoopSampleHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks. Nil is ignored.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetSampleHooks registers custom sampler hooks. Nil is ignored.
func SetSampleHooks(h SampleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sampleHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Sample returns the registered sampler hooks.
func Sample() SampleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sampleHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	sampleHooks = NoopSampleHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
