// Package pipeline runs the complete parse → layout → render flow with
// caching. The CLI and the HTTP API both execute diagrams through a
// [Runner] so caching, logging and hook behavior stay identical across
// entry points.
//
// # Stages
//
//  1. Parse: turn source text into a [diagram.Diagram]
//  2. Layout: size nodes and compute positions
//  3. Render: produce artifacts in the requested formats
//
// Each stage consults the cache before computing. Stage keys chain:
// the parse stage is keyed by source text and kind, the layout stage
// by the parsed diagram's hash plus layout options, and each artifact
// by the laid-out diagram's hash plus render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:    "CEO > [CTO, CFO]",
//	    Formats: []string{"svg", "dot"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/cache"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultTTL bounds the lifetime of cached stage results when the
// runner is not configured with one.
const DefaultTTL = 24 * time.Hour

// Output formats.
const (
	// FormatSVG is the native SVG renderer output.
	FormatSVG = "svg"

	// FormatDOT is Graphviz DOT text.
	FormatDOT = "dot"

	// FormatGraphviz is SVG rendered by Graphviz instead of the native
	// renderer.
	FormatGraphviz = "graphviz"

	// FormatPNG is PNG rendered by Graphviz.
	FormatPNG = "png"

	// FormatJSON is the diagram model as indented JSON.
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatDOT:      true,
	FormatGraphviz: true,
	FormatPNG:      true,
	FormatJSON:     true,
}

// ValidKinds is the set of supported parse kinds. The empty kind means
// auto-detection.
var ValidKinds = map[string]bool{
	"":           true,
	"hierarchy":  true,
	"flow":       true,
	"structured": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options carries all configuration of a pipeline run. The struct
// serializes to JSON for API requests.
type Options struct {
	// Source options
	Text    string `json:"text"`
	Kind    string `json:"kind,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options; zero values leave the diagram's own settings
	// untouched.
	Algorithm string  `json:"algorithm,omitempty"`
	Direction string  `json:"direction,omitempty"`
	SpacingX  float64 `json:"spacing_x,omitempty"`
	SpacingY  float64 `json:"spacing_y,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Padding    float64  `json:"padding,omitempty"`
	Background string   `json:"background,omitempty"`
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the parsed and laid-out model.
	Diagram *diagram.Diagram

	// DiagramHash is the content hash of the parsed diagram, before
	// layout. API responses expose it for client-side caching.
	DiagramHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool
	LayoutHit bool
	RenderHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, dot, graphviz, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKind checks that a parse kind is valid.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q (must be one of: hierarchy, flow, structured, or empty for auto-detection)", kind)
	}
	return nil
}

// ValidateDirection checks that a direction is empty or parseable.
func ValidateDirection(dir string) error {
	if dir == "" {
		return nil
	}
	if _, ok := diagram.ParseDirection(dir); !ok {
		return errors.New(errors.ErrCodeInvalidOptions, "invalid direction: %q (must be one of: TB, BT, LR, RL or their long forms)", dir)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults
// for the full pipeline. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text is required")
	}
	if err := ValidateKind(o.Kind); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForLayout checks layout options.
func (o *Options) ValidateForLayout() error {
	return ValidateDirection(o.Direction)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ApplyTo copies the non-zero layout overrides onto a parsed diagram.
// Custom algorithm names pass through untouched: unregistered ones fall
// back to the grid layout downstream.
func (o *Options) ApplyTo(d *diagram.Diagram) {
	if o.Algorithm != "" {
		d.Layout.Algorithm = diagram.Algorithm(o.Algorithm)
	}
	if dir, ok := diagram.ParseDirection(o.Direction); ok {
		d.Layout.Direction = dir
	}
	if o.SpacingX > 0 {
		d.Layout.Spacing.X = o.SpacingX
	}
	if o.SpacingY > 0 {
		d.Layout.Spacing.Y = o.SpacingY
	}
	if o.Padding > 0 {
		d.Layout.Padding = o.Padding
	}
	if o.Width > 0 {
		d.Width = o.Width
	}
	if o.Height > 0 {
		d.Height = o.Height
	}
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Algorithm: o.Algorithm,
		Direction: o.Direction,
		SpacingX:  o.SpacingX,
		SpacingY:  o.SpacingY,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Background: o.Background,
		Padding:    o.Padding,
		Width:      o.Width,
		Height:     o.Height,
	}
}
