// Package pkg holds the libraries behind deviationview, a layout and
// rendering engine for deviation scale gauges.
//
// # Overview
//
// A deviation scale shows where a value sits within ±50 of a target. The
// gauge is a grey band with a green tolerance zone around a red zero line,
// ticks at every ten and five, eleven labels and a pointer. It can run
// top to bottom or left to right and scales to any frame size.
//
// # Architecture
//
//	[config] (TOML)  →  [view] (state, invalidation, measuring)
//	                        ↓
//	                    [gauge] (size-dependent geometry, pointer mapping)
//	                        ↓
//	                    [render] (Canvas + Draw)  →  [render/sink] (SVG, PNG, PDF, JSON, terminal)
//	                        ↓
//	                    [pipeline] (format dispatch, [cache] of artifacts)
//
// [style] holds the immutable colour and visibility value the view draws
// with. [errors] defines the error codes shared by every package and
// [observability] the hooks that report geometry and render timings.
//
// # Quick Start
//
//	v := view.New(gauge.Vertical, view.WithPosition(-12))
//	if err := v.Resize(1100, 2200); err != nil {
//	    return err
//	}
//	f, _ := v.Frame()
//	svg := sink.RenderSVG(f)
//
// Or from a config file:
//
//	cfg, err := config.Load("gauge.toml")
//	if err != nil {
//	    return err
//	}
//	v, err := cfg.NewView()
//
// # Testing
//
//	go test ./...            # All tests
//	go test ./pkg/gauge/...  # Geometry only
//	go test -run Example     # Examples only
//
// PDF tests skip when rsvg-convert is not installed.
package pkg
