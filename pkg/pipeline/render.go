package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/cache"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/export"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/observability"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/render"
)

// RenderWithCacheInfo renders a laid-out diagram into every requested
// format with caching, and reports whether all artifacts came from the
// cache. Formats are cached individually, so adding a format to a
// previously cached run only renders the new one after the next miss.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	laidData, err := marshalDiagram(d)
	if err != nil {
		return nil, false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	layoutHash := cache.Hash(laidData)

	// Try to serve every format from cache.
	artifacts := make(map[string][]byte)
	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := renderArtifacts(ctx, d, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

// renderArtifacts produces every requested format from a laid-out
// diagram, firing the render hooks around each one.
func renderArtifacts(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = render.RenderSVG(d, buildRenderOptions(opts)...)
		case FormatDOT:
			data = []byte(export.ToDOT(d, export.Options{}))
		case FormatGraphviz:
			data, err = export.RenderSVG(ctx, export.ToDOT(d, export.Options{}))
		case FormatPNG:
			data, err = export.RenderPNG(ctx, export.ToDOT(d, export.Options{}))
		case FormatJSON:
			data, err = json.MarshalIndent(d, "", "  ")
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}

		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildRenderOptions maps pipeline options to native renderer options.
func buildRenderOptions(opts Options) []render.Option {
	var renderOpts []render.Option
	if opts.Padding > 0 {
		renderOpts = append(renderOpts, render.WithPadding(opts.Padding))
	}
	if opts.Background != "" {
		renderOpts = append(renderOpts, render.WithBackground(opts.Background))
	}
	if opts.Width > 0 && opts.Height > 0 {
		renderOpts = append(renderOpts, render.WithSize(opts.Width, opts.Height))
	}
	return renderOpts
}
