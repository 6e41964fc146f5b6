package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func decisionDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New(diagram.TypeFlow)
	nodes := []diagram.Node{
		{ID: "n1", Label: "Valid Data", Shape: diagram.ShapeDiamond},
		{ID: "n2", Label: "Show Error"},
	}
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	d.AddEdge(diagram.Edge{Source: "n1", Target: "n2", Label: "Tidak", Type: diagram.EdgeArrow})
	return d
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(decisionDiagram(t), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"n1" [label="Valid Data", shape=diamond];`,
		`"n2" [label="Show Error", shape=box];`,
		`"n1" -> "n2" [label="Tidak"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT should contain %q:\n%s", want, dot)
		}
	}
}

func TestToDOTRankdir(t *testing.T) {
	tests := []struct {
		dir  diagram.Direction
		want string
	}{
		{diagram.DirectionTopToBottom, "rankdir=TB;"},
		{diagram.DirectionBottomToTop, "rankdir=BT;"},
		{diagram.DirectionLeftToRight, "rankdir=LR;"},
		{diagram.DirectionRightToLeft, "rankdir=RL;"},
		{"", "rankdir=TB;"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			d := decisionDiagram(t)
			d.Layout.Direction = tt.dir
			if dot := ToDOT(d, Options{}); !strings.Contains(dot, tt.want) {
				t.Errorf("direction %q should emit %s", tt.dir, tt.want)
			}
		})
	}
}

func TestToDOTEdgeStyles(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	for _, id := range []string{"a", "b"} {
		if err := d.AddNode(diagram.Node{ID: id}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}

	tests := []struct {
		name    string
		typ     diagram.EdgeType
		want    []string
		exclude []string
	}{
		{"arrow", diagram.EdgeArrow, nil, []string{"arrowhead=none"}},
		{"solid", diagram.EdgeSolid, []string{"arrowhead=none"}, []string{"style="}},
		{"dashed", diagram.EdgeDashed, []string{"style=dashed", "arrowhead=none"}, nil},
		{"dotted", diagram.EdgeDotted, []string{"style=dotted", "arrowhead=none"}, nil},
		{"plain", "", []string{"arrowhead=none"}, []string{"style="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.Edges = []diagram.Edge{{Source: "a", Target: "b", Type: tt.typ}}
			dot := ToDOT(d, Options{})
			for _, want := range tt.want {
				if !strings.Contains(dot, want) {
					t.Errorf("should contain %q:\n%s", want, dot)
				}
			}
			for _, excl := range tt.exclude {
				if strings.Contains(dot, excl) {
					t.Errorf("should not contain %q:\n%s", excl, dot)
				}
			}
		})
	}
}

func TestToDOTSkipsDanglingEdges(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	d.AddEdge(diagram.Edge{Source: "a", Target: "ghost"})

	if dot := ToDOT(d, Options{}); strings.Contains(dot, "->") {
		t.Errorf("edges naming missing nodes should be skipped:\n%s", dot)
	}
}

func TestToDOTShapes(t *testing.T) {
	tests := []struct {
		shape diagram.Shape
		want  string
	}{
		{diagram.ShapeRectangle, "shape=box"},
		{diagram.ShapeCircle, "shape=circle"},
		{diagram.ShapeDiamond, "shape=diamond"},
		{diagram.ShapeEllipse, "shape=ellipse"},
		{"cloud", "shape=box"},
		{"", "shape=box"},
	}
	for _, tt := range tests {
		d := diagram.New(diagram.TypeFlow)
		if err := d.AddNode(diagram.Node{ID: "a", Shape: tt.shape}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
		if dot := ToDOT(d, Options{}); !strings.Contains(dot, tt.want) {
			t.Errorf("shape %q should map to %s:\n%s", tt.shape, tt.want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1", Label: "Start", X: 150, Y: 100}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	dot := ToDOT(d, Options{Detailed: true})
	if !strings.Contains(dot, `n1 (150,100)`) {
		t.Errorf("detailed labels should carry the ID and position:\n%s", dot)
	}
}

func TestToDOTNodeFill(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	err := d.AddNode(diagram.Node{ID: "a", Style: &diagram.Style{Fill: "#ff0000"}})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	if dot := ToDOT(d, Options{}); !strings.Contains(dot, `fillcolor="#ff0000"`) {
		t.Errorf("node fill should map to fillcolor:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="134pt" height="116pt"
 viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox should be re-anchored at the origin:\n%s", out)
	}
	if !strings.Contains(out, `width="134" height="116"`) {
		t.Errorf("pt sizes should become pixel sizes:\n%s", out)
	}

	// Output without a viewBox passes through untouched.
	plain := []byte(`<svg xmlns="x"><g></g></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("missing viewBox should pass through: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(decisionDiagram(t), Options{})

	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	out := string(svg)
	if !strings.Contains(out, "<svg xmlns=") || !strings.Contains(out, "</svg>") {
		t.Errorf("output should be an SVG document:\n%.200s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 `) {
		t.Errorf("viewBox should be normalized:\n%.200s", out)
	}
}

func TestRenderPNG(t *testing.T) {
	dot := ToDOT(decisionDiagram(t), Options{})

	png, err := RenderPNG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output should start with the PNG signature, got % x", png[:min(8, len(png))])
	}
}
