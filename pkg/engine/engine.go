// Package engine ties the diagram stages together behind a small facade.
//
// # Overview
//
// The underlying packages each do one step: parse builds the model, layout
// sizes and positions it, render draws it. The engine composes them for
// callers that just want text in, SVG out:
//
//	svg, err := engine.RenderText("CEO > [CTO, CFO]")
//
// Every step is also reachable individually for callers that want to edit
// the model between stages.
package engine

import (
	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/layout"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/parse"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/render"
)

// Parse converts diagram text into its model, auto-detecting the syntax
// (hierarchy, flow or structured JSON).
func Parse(text string) (*diagram.Diagram, error) {
	return parse.Parse(text)
}

// ParseAs converts diagram text using an explicit input kind.
func ParseAs(text string, kind parse.Kind) (*diagram.Diagram, error) {
	return parse.ParseAs(text, kind)
}

// Layout fills in missing node dimensions and runs the diagram's configured
// layout algorithm. Both passes mutate the diagram in place and are safe to
// repeat.
func Layout(d *diagram.Diagram) {
	layout.AutoSize(d)
	layout.Apply(d)
}

// Render lays out the diagram and draws it as SVG.
func Render(d *diagram.Diagram, opts ...render.Option) []byte {
	Layout(d)
	return render.RenderSVG(d, opts...)
}

// RenderText parses, lays out and draws in one call.
func RenderText(text string, opts ...render.Option) ([]byte, error) {
	d, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Render(d, opts...), nil
}

// RegisterShape adds a custom node shape for subsequent renders.
func RegisterShape(name diagram.Shape, fn render.ShapeFunc) {
	render.RegisterShape(name, fn)
}

// RegisterLayout adds a custom layout algorithm for subsequent renders.
func RegisterLayout(name diagram.Algorithm, fn layout.Func) {
	layout.Register(name, fn)
}
