package render

import (
	"strings"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func flowDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New(diagram.TypeFlow)
	nodes := []diagram.Node{
		{ID: "n1", Label: "Valid Data", Shape: diagram.ShapeDiamond, X: 0, Y: 0, Width: 120, Height: 50},
		{ID: "n2", Label: "Show Error", X: 0, Y: 150, Width: 120, Height: 50},
	}
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	d.AddEdge(diagram.Edge{Source: "n1", Target: "n2", Label: "Tidak", Type: diagram.EdgeArrow})
	return d
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(flowDiagram(t)))

	singletons := []string{"<svg ", "<defs>", `<g class="edges">`, `<g class="nodes">`, "</svg>"}
	for _, s := range singletons {
		if n := strings.Count(svg, s); n != 1 {
			t.Errorf("%q appears %d times, want 1", s, n)
		}
	}
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing xmlns prefix: %.80s", svg)
	}
}

func TestRenderSVGShapesAndEdge(t *testing.T) {
	svg := string(RenderSVG(flowDiagram(t)))

	if !strings.Contains(svg, "<polygon points=") {
		t.Error("diamond node did not render a polygon")
	}
	if !strings.Contains(svg, "<rect ") {
		t.Error("rectangle node did not render a rect")
	}
	if !strings.Contains(svg, `marker-end="url(#arrowhead)"`) {
		t.Error("arrow edge did not reference the arrowhead marker")
	}
	if !strings.Contains(svg, ">Tidak</text>") {
		t.Error("edge label missing")
	}
	if !strings.Contains(svg, ">Valid Data</text>") || !strings.Contains(svg, ">Show Error</text>") {
		t.Error("node labels missing")
	}
}

func TestRenderSVGPaddingShift(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1", X: -100, Y: -30, Width: 80, Height: 40}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	// the node's top-left corner lands exactly on the padding offset
	if !strings.Contains(svg, `<rect x="50.0" y="50.0"`) {
		t.Errorf("negative coordinates not shifted into the canvas:\n%s", svg)
	}
	// canvas encloses the box plus padding on both sides
	if !strings.Contains(svg, `viewBox="0 0 180.0 140.0"`) {
		t.Errorf("unexpected viewBox:\n%s", svg)
	}
}

func TestRenderSVGDefaultBoxForUnsizedNodes(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	if !strings.Contains(svg, `width="100.0" height="50.0"`) {
		t.Errorf("unsized node did not get the default box:\n%s", svg)
	}
}

func TestRenderSVGSkipsDanglingEdges(t *testing.T) {
	d := flowDiagram(t)
	d.AddEdge(diagram.Edge{Source: "n1", Target: "ghost"})
	svg := string(RenderSVG(d))

	if n := strings.Count(svg, "<path "); n != 1 {
		t.Errorf("edge paths = %d, want 1 (dangling edge must be skipped)", n)
	}
}

func TestRenderSVGEdgeVariants(t *testing.T) {
	tests := []struct {
		name    string
		typ     diagram.EdgeType
		want    string
		exclude string
	}{
		{name: "solid", typ: diagram.EdgeSolid, exclude: "stroke-dasharray"},
		{name: "default", typ: "", exclude: "marker-end"},
		{name: "dashed", typ: diagram.EdgeDashed, want: `stroke-dasharray="6 4"`},
		{name: "dotted", typ: diagram.EdgeDotted, want: `stroke-dasharray="2 3"`},
		{name: "arrow", typ: diagram.EdgeArrow, want: `marker-end="url(#arrowhead)"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := flowDiagram(t)
			d.Edges[0].Type = tt.typ
			d.Edges[0].Label = ""
			svg := string(RenderSVG(d))
			if tt.want != "" && !strings.Contains(svg, tt.want) {
				t.Errorf("missing %q in:\n%s", tt.want, svg)
			}
			if tt.exclude != "" && strings.Contains(svg, tt.exclude) {
				t.Errorf("unexpected %q in:\n%s", tt.exclude, svg)
			}
		})
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1", Label: `<A & "B">`}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	if strings.Contains(svg, `<A &`) {
		t.Error("label was not escaped")
	}
	if !strings.Contains(svg, "&lt;A &amp; &#34;B&#34;&gt;") {
		t.Errorf("escaped label missing:\n%s", svg)
	}
}

func TestRenderSVGMultilineLabel(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1", Label: "Line one\nLine two"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	if n := strings.Count(svg, "<tspan "); n != 2 {
		t.Errorf("tspan count = %d, want 2", n)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	t.Run("background", func(t *testing.T) {
		svg := string(RenderSVG(flowDiagram(t), WithBackground("#fafafa")))
		if !strings.Contains(svg, `fill="#fafafa"`) {
			t.Error("background rect missing")
		}
	})

	t.Run("size", func(t *testing.T) {
		svg := string(RenderSVG(flowDiagram(t), WithSize(640, 480)))
		if !strings.Contains(svg, `width="640" height="480"`) {
			t.Errorf("size attributes missing:\n%.120s", svg)
		}
	})

	t.Run("padding", func(t *testing.T) {
		d := diagram.New(diagram.TypeFlow)
		if err := d.AddNode(diagram.Node{ID: "n1", Width: 100, Height: 50}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
		svg := string(RenderSVG(d, WithPadding(10)))
		if !strings.Contains(svg, `viewBox="0 0 120.0 70.0"`) {
			t.Errorf("padding not applied:\n%.120s", svg)
		}
	})

	t.Run("theme", func(t *testing.T) {
		svg := string(RenderSVG(flowDiagram(t), WithTheme(Theme{NodeFill: "#001122"})))
		if !strings.Contains(svg, `fill="#001122"`) {
			t.Error("theme fill not applied")
		}
		// unset theme fields keep their defaults
		if !strings.Contains(svg, `stroke="#333333"`) {
			t.Error("default stroke lost")
		}
	})
}

func TestRenderSVGNodeStyleOverrides(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	err := d.AddNode(diagram.Node{
		ID:    "n1",
		Style: &diagram.Style{Fill: "#ff0000", Stroke: "#00ff00", StrokeWidth: 4},
	})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	if !strings.Contains(svg, `fill="#ff0000" stroke="#00ff00" stroke-width="4.0"`) {
		t.Errorf("node style not applied:\n%s", svg)
	}
}

func TestRenderSVGEmptyDiagram(t *testing.T) {
	d := diagram.New(diagram.TypeFlow)
	svg := string(RenderSVG(d))

	if strings.Count(svg, "<svg ") != 1 || strings.Count(svg, "</svg>") != 1 {
		t.Errorf("empty diagram must still be a single svg document:\n%s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 100.0 100.0"`) {
		t.Errorf("empty canvas should be padding only:\n%s", svg)
	}
}

func TestRenderSVGCanvasHints(t *testing.T) {
	d := flowDiagram(t)
	d.Width, d.Height = 800, 600
	svg := string(RenderSVG(d))

	if !strings.Contains(svg, `width="800" height="600"`) {
		t.Errorf("canvas hints ignored:\n%.120s", svg)
	}
}

func TestRenderSVGTreeListConnectors(t *testing.T) {
	d := diagram.New(diagram.TypeHierarchy)
	d.Layout.Algorithm = diagram.AlgorithmTreeList
	nodes := []diagram.Node{
		{ID: "root", X: 0, Y: 0, Width: 100, Height: 40,
			Meta: &diagram.Meta{TreeDepth: 0, IsLast: true}},
		{ID: "a", X: 150, Y: 60, Width: 100, Height: 40,
			Meta: &diagram.Meta{TreeDepth: 1, IsLast: false}},
		{ID: "a1", X: 300, Y: 120, Width: 100, Height: 40,
			Meta: &diagram.Meta{TreeDepth: 2, IsLast: true, AncestorLines: []int{0}}},
		{ID: "b", X: 150, Y: 180, Width: 100, Height: 40,
			Meta: &diagram.Meta{TreeDepth: 1, IsLast: true}},
	}
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	d.AddEdge(diagram.Edge{Source: "root", Target: "a"})
	d.AddEdge(diagram.Edge{Source: "a", Target: "a1"})
	d.AddEdge(diagram.Edge{Source: "root", Target: "b"})
	svg := string(RenderSVG(d))

	// elbows replace bezier edges: three child rows, no curves
	if n := strings.Count(svg, ` V `); n != 3 {
		t.Errorf("elbow count = %d, want 3", n)
	}
	if strings.Contains(svg, " C ") {
		t.Error("tree-list mode must not draw bezier edges")
	}
	// a1 keeps a vertical guide for the still-open root column
	if n := strings.Count(svg, "<line "); n != 1 {
		t.Errorf("guide count = %d, want 1", n)
	}
	// the guide sits at a's elbow column: a.X - 150 + 10 + shift 50
	if !strings.Contains(svg, `<line x1="60.0"`) {
		t.Errorf("guide column misplaced:\n%s", svg)
	}
}
