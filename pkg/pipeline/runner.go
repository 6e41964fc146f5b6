package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/cache"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/engine"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/observability"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/parse"
)

// Runner executes the pipeline with caching. It is stateless apart from
// the cache, keyer and logger: results are never stored on the runner,
// so one Runner can serve concurrent requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL bounds the lifetime of cached stage results. Zero means
	// [DefaultTTL].
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer. A nil
// keyer falls back to the default keyer, a nil cache disables caching,
// and a nil logger falls back to the package default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute runs the complete parse → layout → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	d, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = d.NodeCount()
	result.Stats.EdgeCount = d.EdgeCount()
	result.CacheInfo.ParseHit = parseHit

	// The pre-layout hash keys the layout stage and is exposed to API
	// clients.
	if data, err := marshalDiagram(d); err == nil {
		result.DiagramHash = cache.Hash(data)
	}

	r.Logger.Info("parsed diagram",
		"nodes", d.NodeCount(),
		"edges", d.EdgeCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	d, layoutHit, err := r.LayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Diagram = d
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"algorithm", effectiveAlgorithm(d, opts),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo parses source text with caching and reports
// whether the result came from the cache.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*diagram.Diagram, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.DiagramKey(opts.Kind, opts.Text)
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Kind)
	start := time.Now()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if d, err := unmarshalDiagram(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "diagram")
				hooks.OnParseComplete(ctx, opts.Kind, d.NodeCount(), time.Since(start), nil)
				return d, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "diagram")
	}

	d, err := parse.ParseAs(opts.Text, parse.Kind(opts.Kind))
	if err != nil {
		hooks.OnParseComplete(ctx, opts.Kind, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnParseComplete(ctx, opts.Kind, d.NodeCount(), time.Since(start), nil)

	// Refresh replaces the cached entry instead of skipping the write,
	// so a forced re-parse also warms the cache.
	if data, err := marshalDiagram(d); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err == nil {
			observability.Cache().OnCacheSet(ctx, "diagram", len(data))
		}
	}

	return d, false, nil
}

// Parse is a convenience wrapper that discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	d, _, err := r.ParseWithCacheInfo(ctx, opts)
	return d, err
}

// LayoutWithCacheInfo sizes and positions a parsed diagram with
// caching. The returned diagram is the laid-out model: the input
// pointer on a miss, a fresh one decoded from the cache on a hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, d *diagram.Diagram, opts Options) (*diagram.Diagram, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	data, err := marshalDiagram(d)
	if err != nil {
		return nil, false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	key := r.Keyer.LayoutKey(cache.Hash(data), opts.LayoutKeyOpts())

	hooks := observability.Pipeline()
	algorithm := effectiveAlgorithm(d, opts)
	hooks.OnLayoutStart(ctx, algorithm, d.NodeCount())
	start := time.Now()

	if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if laid, err := unmarshalDiagram(cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			hooks.OnLayoutComplete(ctx, algorithm, time.Since(start), nil)
			return laid, true, nil
		}
		// Fall through and recompute when the entry does not decode.
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	opts.ApplyTo(d)
	engine.Layout(d)
	hooks.OnLayoutComplete(ctx, algorithm, time.Since(start), nil)

	if laidData, err := marshalDiagram(d); err == nil {
		if err := r.Cache.Set(ctx, key, laidData, r.ttl()); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(laidData))
		}
	}

	return d, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, d *diagram.Diagram, opts Options) (*diagram.Diagram, error) {
	laid, _, err := r.LayoutWithCacheInfo(ctx, d, opts)
	return laid, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return DefaultTTL
}

// effectiveAlgorithm resolves the algorithm a layout run will use.
func effectiveAlgorithm(d *diagram.Diagram, opts Options) string {
	if opts.Algorithm != "" {
		return opts.Algorithm
	}
	return string(d.Layout.Algorithm)
}

// marshalDiagram serializes a diagram for cache storage and hashing.
func marshalDiagram(d *diagram.Diagram) ([]byte, error) {
	return json.Marshal(d)
}

// unmarshalDiagram decodes a cached diagram, validating it so corrupt
// entries read as cache misses.
func unmarshalDiagram(data []byte) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
