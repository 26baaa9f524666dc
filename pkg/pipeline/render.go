package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/deviationview/pkg/cache"
	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/observability"
	"github.com/matzehuels/deviationview/pkg/render/sink"
	"github.com/matzehuels/deviationview/pkg/view"
)

// Render generates output artifacts in the requested formats, keyed by
// format. It stops at the first failing format.
func Render(ctx context.Context, f view.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}

		key := artifactKey(f, format, opts)
		if data, hit, err := opts.Cache.Get(ctx, key); err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		} else if hit {
			opts.Logger.Debug("cached", "format", format, "bytes", len(data))
			artifacts[format] = data
			continue
		}

		observability.Render().OnRenderStart(ctx, format)
		start := time.Now()
		data, err := renderFormat(f, format, opts)
		observability.Render().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}

		if err := opts.Cache.Set(ctx, key, data, ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		}
		opts.Logger.Debug("rendered", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

// artifactKey covers every input that changes the bytes of format. Options
// that a format ignores are left out so they do not split the cache.
func artifactKey(f view.Frame, format string, opts Options) string {
	parts := []any{
		format,
		f.Snapshot.Fingerprint(),
		f.Position,
		f.Style.Palette(),
		f.Style.PointerVisible(),
		f.Style.ContourVisible(),
		f.Labels,
	}
	switch format {
	case FormatSVG, FormatPDF:
		parts = append(parts, opts.FontFamily)
	case FormatPNG:
		parts = append(parts, opts.Scale)
	case FormatText:
		parts = append(parts, opts.Cols, opts.Rows)
	}
	return cache.Key("artifact", parts...)
}

func renderFormat(f view.Frame, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithFontFamily(opts.FontFamily)}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(f, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(f, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(f, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(f)
	case FormatText:
		return sink.RenderText(f, opts.Cols, opts.Rows)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
