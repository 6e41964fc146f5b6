// Package export converts diagrams to external formats. ToDOT emits
// Graphviz DOT text, and RenderSVG runs Graphviz itself for an
// alternative rendering of the same model.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Options configures DOT output.
type Options struct {
	// Detailed appends the node ID and computed position to each label.
	// Useful when debugging layout differences against Graphviz.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT format. Graphviz computes
// its own positions, so the diagram does not need to be laid out first.
// The result can be rendered with [RenderSVG] or fed to the dot tool.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(d.Layout.Direction))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := range d.Nodes {
		n := &d.Nodes[i]
		attrs := nodeAttrs(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	index := d.NodeIndex()
	for _, e := range d.Edges {
		if _, ok := index[e.Source]; !ok {
			continue
		}
		if _, ok := index[e.Target]; !ok {
			continue
		}
		if attrs := edgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// rankdir maps a layout direction to the DOT equivalent.
func rankdir(dir diagram.Direction) string {
	switch dir {
	case diagram.DirectionBottomToTop:
		return "BT"
	case diagram.DirectionLeftToRight:
		return "LR"
	case diagram.DirectionRightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// dotShape maps a node shape to the DOT equivalent. Custom shapes have
// no DOT counterpart and draw as boxes.
func dotShape(s diagram.Shape) string {
	switch s {
	case diagram.ShapeCircle:
		return "circle"
	case diagram.ShapeDiamond:
		return "diamond"
	case diagram.ShapeEllipse:
		return "ellipse"
	default:
		return "box"
	}
}

func nodeAttrs(n *diagram.Node, detailed bool) []string {
	label := n.DisplayLabel()
	if detailed {
		label += fmt.Sprintf("\n%s (%.0f,%.0f)", n.ID, n.X, n.Y)
	}

	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("shape=%s", dotShape(n.Shape)),
	}
	if n.Style != nil && n.Style.Fill != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Style.Fill))
	}
	return attrs
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	switch e.Type {
	case diagram.EdgeDashed:
		attrs = append(attrs, "style=dashed")
	case diagram.EdgeDotted:
		attrs = append(attrs, "style=dotted")
	}
	// Arrowheads appear only on arrow edges, matching the SVG renderer.
	if e.Type != diagram.EdgeArrow {
		attrs = append(attrs, "arrowhead=none")
	}
	return attrs
}
