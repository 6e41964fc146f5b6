// Package pkg provides the core libraries for Aksara Diagram rendering.
//
// # Overview
//
// Aksara Diagram turns compact text descriptions into finished diagrams. The
// pkg directory is organized into four main areas:
//
//  1. [diagram] - The shared model (nodes, edges, layout settings)
//  2. [parse], [layout], [render] - The three pipeline stages
//  3. [pipeline] - Cached orchestration used by CLI and server
//  4. [cache], [store], [config] - Infrastructure backends
//
// # Architecture
//
// The typical data flow through Aksara Diagram:
//
//	Diagram Text (hierarchy / flow / structured JSON)
//	         ↓
//	    [parse] package (text → model)
//	         ↓
//	    [layout] package (auto-size + position)
//	         ↓
//	    [render] package (SVG output)
//	         ↓
//	    SVG/DOT/PNG/JSON artifacts
//
// # Quick Start
//
// Render a diagram in one call through the [engine] facade:
//
//	import "github.com/Ak-sara/aksara-writer-sub001/pkg/engine"
//
//	svg, err := engine.RenderText("CEO > [CTO, CFO]")
//
// Or run the stages individually to edit the model in between:
//
//	d, _ := parse.Parse("start -> finish")
//	d.Layout.Direction = diagram.DirectionLeftToRight
//	layout.AutoSize(d)
//	layout.Apply(d)
//	svg := render.RenderSVG(d)
//
// # Main Packages
//
// ## Model and Stages
//
// [diagram] - The diagram model shared by every stage: nodes with optional
// explicit geometry, edges with labels and line styles, and the layout
// settings block (algorithm, direction, spacing).
//
// [parse] - Converts the three input syntaxes into the model: hierarchy
// ("CEO > [CTO, CFO]"), flow ("a -> b [label: x]"), and structured JSON.
// The syntax is auto-detected unless a kind is forced.
//
// [layout] - Fills in missing node dimensions from label text, then positions
// nodes with a pluggable algorithm (tree, grid, or a registered custom one).
//
// [render] - Draws a laid-out diagram as SVG with themable colors and an
// extensible shape registry, or as a plain-text summary.
//
// [export] - Converts diagrams to Graphviz DOT and, through the graphviz
// library, to alternative SVG and PNG renderings.
//
// ## Orchestration
//
// [engine] - One-call facade over parse, layout, and render.
//
// [pipeline] - The cached pipeline used by the CLI and the HTTP server.
// Content-addressed caching at every stage: hash(text) for parse,
// hash(diagram)+options for layout, hash(diagram)+options for render.
//
// [server] - HTTP API over the pipeline (render, parse, shapes, stored
// diagrams) with request logging and graceful shutdown.
//
// ## Infrastructure
//
// [cache] - Cache backends behind one interface: file (sharded directories),
// Redis, and the null cache. Includes the content hasher and key builders
// the pipeline uses.
//
// [store] - Saved-diagram persistence: file backend for the CLI, MongoDB
// backend for shared deployments.
//
// [config] - TOML configuration with defaults, the standard config path,
// and backend factories for cache and store.
//
// [errors] - Error taxonomy (parse, validation, render) with positional
// context for parse failures.
//
// [observability] - Optional hooks for pipeline stage and cache events,
// no-op unless registered.
//
// [io] - Source reading (file, stdin) and JSON import/export helpers.
//
// # Common Workflows
//
// Register a custom shape and use it from structured input:
//
//	render.RegisterShape("cloud", drawCloud)
//	d, _ := parse.Parse(`{"nodes": [{"id": "a", "shape": "cloud"}]}`)
//
// Run the cached pipeline:
//
//	runner := pipeline.NewRunner(c, keyer, logger)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Text:    "CEO > [CTO, CFO]",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// Export to Graphviz:
//
//	dot := export.ToDOT(d, export.Options{})
//	png, _ := export.RenderPNG(ctx, dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/diagram
// [parse]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/parse
// [layout]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/layout
// [render]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/render
// [export]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/export
// [engine]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/engine
// [pipeline]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/server
// [cache]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/cache
// [store]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/store
// [config]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/config
// [errors]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/observability
// [io]: https://pkg.go.dev/github.com/Ak-sara/aksara-writer-sub001/pkg/io
package pkg
