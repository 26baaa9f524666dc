// Package observability provides hooks for metrics, tracing and logging.
//
// Hosts register hooks at startup to receive events about geometry
// recomputation, pointer updates and rendering without the library
// depending on a particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGaugeHooks(&myGaugeHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	snap, err := gauge.Compute(w, h, o)
//	observability.Gauge().OnCompute(ctx, o.String(), w, h, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gauge Hooks
// =============================================================================

// GaugeHooks receives events from the view's geometry updates.
type GaugeHooks interface {
	// OnCompute records a full recompute of the size-dependent geometry.
	OnCompute(ctx context.Context, orientation string, width, height int, duration time.Duration, err error)

	// OnPointer records a pointer update. clamped is true when the
	// requested position was outside the scale.
	OnPointer(ctx context.Context, requested, applied int, clamped bool)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the output sinks.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGaugeHooks is a no-op implementation of GaugeHooks.
type NoopGaugeHooks struct{}

func (NoopGaugeHooks) OnCompute(context.Context, string, int, int, time.Duration, error) {}
func (NoopGaugeHooks) OnPointer(context.Context, int, int, bool)                         {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gaugeHooks  GaugeHooks  = NoopGaugeHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetGaugeHooks registers custom gauge hooks.
// This should be called once at application startup before any view is created.
func SetGaugeHooks(h GaugeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gaugeHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Gauge returns the registered gauge hooks.
func Gauge() GaugeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gaugeHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gaugeHooks = NoopGaugeHooks{}
	renderHooks = NoopRenderHooks{}
}
