package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func drawBox(t *testing.T, shape diagram.Shape) string {
	t.Helper()
	var buf bytes.Buffer
	b := Box{ID: "n1", X: 10, Y: 20, W: 100, H: 40, CX: 60, CY: 40,
		Fill: "#fff", Stroke: "#333", Width: 2}
	shapeFor(shape)(&buf, b)
	return buf.String()
}

func TestBuiltinShapes(t *testing.T) {
	tests := []struct {
		shape diagram.Shape
		want  string
	}{
		{shape: diagram.ShapeRectangle, want: `<rect x="10.0" y="20.0" width="100.0" height="40.0"`},
		{shape: diagram.ShapeCircle, want: `<circle cx="60.0" cy="40.0" r="20.0"`},
		{shape: diagram.ShapeDiamond, want: `<polygon points="60.0,20.0 110.0,40.0 60.0,60.0 10.0,40.0"`},
		{shape: diagram.ShapeEllipse, want: `<ellipse cx="60.0" cy="40.0" rx="50.0" ry="20.0"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			got := drawBox(t, tt.shape)
			if !strings.Contains(got, tt.want) {
				t.Errorf("fragment = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestShapeResolution(t *testing.T) {
	t.Run("empty name draws rectangle", func(t *testing.T) {
		if got := drawBox(t, ""); !strings.Contains(got, "<rect ") {
			t.Errorf("fragment = %q", got)
		}
	})

	t.Run("unknown name falls back to rectangle", func(t *testing.T) {
		if got := drawBox(t, "hexagon"); !strings.Contains(got, "<rect ") {
			t.Errorf("fragment = %q", got)
		}
	})

	t.Run("custom shape", func(t *testing.T) {
		RegisterShape("cloud", func(buf *bytes.Buffer, b Box) {
			fmt.Fprintf(buf, `<path d="cloud" data-id="%s"/>`, b.ID)
		})
		if got := drawBox(t, "cloud"); !strings.Contains(got, `data-id="n1"`) {
			t.Errorf("fragment = %q", got)
		}
	})

	t.Run("nil registration ignored", func(t *testing.T) {
		RegisterShape("void", nil)
		if got := drawBox(t, "void"); !strings.Contains(got, "<rect ") {
			t.Errorf("fragment = %q", got)
		}
	})
}

func TestRegisteredShapeUsedByRender(t *testing.T) {
	RegisterShape("pill", func(buf *bytes.Buffer, b Box) {
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" class="pill"/>`+"\n",
			b.X, b.Y, b.W, b.H, b.H/2)
	})

	d := diagram.New(diagram.TypeFlow)
	if err := d.AddNode(diagram.Node{ID: "n1", Shape: "pill", Width: 100, Height: 40}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	svg := string(RenderSVG(d))

	if !strings.Contains(svg, `class="pill"`) {
		t.Errorf("custom shape not used:\n%s", svg)
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a < b & c > d", want: "a &lt; b &amp; c &gt; d"},
		{in: `quote "x"`, want: "quote &#34;x&#34;"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
