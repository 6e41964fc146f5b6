package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Fallback box for nodes that reach the renderer unsized.
const (
	defaultBoxWidth  = 100.0
	defaultBoxHeight = 50.0
)

const (
	defaultNodeStrokeWidth = 2.0
	defaultEdgeStrokeWidth = 1.5
	edgeLabelSize          = 11.0

	listElbowInset = 10.0
	listRowRise    = 40.0 // connector rises this far above a row's center
)

// Theme holds the default paint of a render. Node and edge styles override
// it per element.
type Theme struct {
	NodeFill   string
	NodeStroke string
	EdgeStroke string
	Text       string
	FontFamily string
}

// DefaultTheme returns the paint used when no theme option is given.
func DefaultTheme() Theme {
	return Theme{
		NodeFill:   "#ffffff",
		NodeStroke: "#333333",
		EdgeStroke: "#666666",
		Text:       "#1a1a1a",
		FontFamily: defaultFontFamily,
	}
}

// withDefaults fills empty theme fields so a partial theme still renders.
func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	if t.NodeFill == "" {
		t.NodeFill = def.NodeFill
	}
	if t.NodeStroke == "" {
		t.NodeStroke = def.NodeStroke
	}
	if t.EdgeStroke == "" {
		t.EdgeStroke = def.EdgeStroke
	}
	if t.Text == "" {
		t.Text = def.Text
	}
	if t.FontFamily == "" {
		t.FontFamily = def.FontFamily
	}
	return t
}

// Option configures a render call.
type Option func(*svgRenderer)

type svgRenderer struct {
	padding    float64
	background string
	theme      Theme
	width      float64
	height     float64
}

// WithPadding overrides the whitespace added around the diagram's bounding
// box. The diagram's own layout padding (default 50) applies otherwise.
func WithPadding(p float64) Option { return func(r *svgRenderer) { r.padding = p } }

// WithBackground draws a full-canvas rectangle in the given color behind the
// diagram. Without it the canvas is transparent.
func WithBackground(color string) Option { return func(r *svgRenderer) { r.background = color } }

// WithTheme replaces the default paint. Empty fields keep their defaults.
func WithTheme(t Theme) Option { return func(r *svgRenderer) { r.theme = t } }

// WithSize forces the svg width/height attributes. The viewBox keeps the
// computed canvas, so the image scales rather than crops.
func WithSize(w, h float64) Option {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

func newSVGRenderer(opts ...Option) svgRenderer {
	r := svgRenderer{padding: -1, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}
	r.theme = r.theme.withDefaults()
	return r
}

// RenderSVG draws a laid-out diagram as a standalone SVG document. The
// diagram is read, never modified: the shift that moves every node into the
// padded canvas happens on rendering copies. Edges whose endpoints are
// missing are skipped.
func RenderSVG(d *diagram.Diagram, opts ...Option) []byte {
	r := newSVGRenderer(opts...)

	pad := r.padding
	if pad < 0 {
		pad = d.Layout.PaddingOrDefault()
	}

	boxes, byID, canvasW, canvasH := measure(d, pad, r.theme)

	attrW, attrH := canvasW, canvasH
	if d.Width > 0 {
		attrW = d.Width
	}
	if d.Height > 0 {
		attrH = d.Height
	}
	if r.width > 0 {
		attrW = r.width
	}
	if r.height > 0 {
		attrH = r.height
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		canvasW, canvasH, attrW, attrH)
	renderDefs(&buf, r.theme)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			canvasW, canvasH, r.background)
	}
	renderEdges(&buf, d, boxes, byID, r.theme)
	renderNodes(&buf, d, boxes, r.theme)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// measure computes a rendering box per node, shifted so the smallest
// occupied coordinate lands at the padding offset, and returns the canvas
// dimensions that enclose everything plus padding on all sides.
func measure(d *diagram.Diagram, pad float64, theme Theme) ([]Box, map[string]Box, float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range d.Nodes {
		n := &d.Nodes[i]
		w, h := boxSize(n)
		minX = min(minX, n.X)
		minY = min(minY, n.Y)
		maxX = max(maxX, n.X+w)
		maxY = max(maxY, n.Y+h)
	}
	if len(d.Nodes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	dx, dy := pad-minX, pad-minY
	boxes := make([]Box, len(d.Nodes))
	byID := make(map[string]Box, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		w, h := boxSize(n)
		b := Box{
			ID:     n.ID,
			Label:  n.DisplayLabel(),
			X:      n.X + dx,
			Y:      n.Y + dy,
			W:      w,
			H:      h,
			Fill:   theme.NodeFill,
			Stroke: theme.NodeStroke,
			Width:  defaultNodeStrokeWidth,
		}
		b.CX, b.CY = b.X+w/2, b.Y+h/2
		if s := n.Style; s != nil {
			if s.Fill != "" {
				b.Fill = s.Fill
			}
			if s.Stroke != "" {
				b.Stroke = s.Stroke
			}
			if s.StrokeWidth > 0 {
				b.Width = s.StrokeWidth
			}
		}
		boxes[i] = b
		if _, ok := byID[n.ID]; !ok {
			byID[n.ID] = b
		}
	}
	return boxes, byID, (maxX - minX) + 2*pad, (maxY - minY) + 2*pad
}

func boxSize(n *diagram.Node) (w, h float64) {
	w, h = n.Width, n.Height
	if w <= 0 {
		w = defaultBoxWidth
	}
	if h <= 0 {
		h = defaultBoxHeight
	}
	return w, h
}

func renderDefs(buf *bytes.Buffer, theme Theme) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto"><polygon points="0 0, 10 3.5, 0 7" fill="%s"/></marker>`+"\n",
		theme.EdgeStroke)
	buf.WriteString("  </defs>\n")
}

func renderEdges(buf *bytes.Buffer, d *diagram.Diagram, boxes []Box, byID map[string]Box, theme Theme) {
	buf.WriteString(`  <g class="edges">` + "\n")
	if d.Layout.Algorithm == diagram.AlgorithmTreeList {
		renderListConnectors(buf, d, boxes, theme)
	} else {
		for _, e := range d.Edges {
			src, okS := byID[e.Source]
			dst, okD := byID[e.Target]
			if !okS || !okD {
				continue
			}
			renderEdge(buf, e, src, dst, theme)
		}
	}
	buf.WriteString("  </g>\n")
}

// renderEdge draws one connector as a cubic bezier between box edges. The
// curve leaves and enters along the dominant axis between the two centers.
func renderEdge(buf *bytes.Buffer, e diagram.Edge, src, dst Box, theme Theme) {
	var sx, sy, ex, ey float64
	var c1x, c1y, c2x, c2y float64

	dx := dst.CX - src.CX
	dy := dst.CY - src.CY
	if math.Abs(dx) > math.Abs(dy) {
		if dx >= 0 {
			sx, ex = src.X+src.W, dst.X
		} else {
			sx, ex = src.X, dst.X+dst.W
		}
		sy, ey = src.CY, dst.CY
		midX := (sx + ex) / 2
		c1x, c1y = midX, sy
		c2x, c2y = midX, ey
	} else {
		if dy >= 0 {
			sy, ey = src.Y+src.H, dst.Y
		} else {
			sy, ey = src.Y, dst.Y+dst.H
		}
		sx, ex = src.CX, dst.CX
		midY := (sy + ey) / 2
		c1x, c1y = sx, midY
		c2x, c2y = ex, midY
	}

	stroke := theme.EdgeStroke
	width := defaultEdgeStrokeWidth
	if e.Style != nil {
		if e.Style.Stroke != "" {
			stroke = e.Style.Stroke
		}
		if e.Style.StrokeWidth > 0 {
			width = e.Style.StrokeWidth
		}
	}

	dash := ""
	switch e.Type {
	case diagram.EdgeDashed:
		dash = ` stroke-dasharray="6 4"`
	case diagram.EdgeDotted:
		dash = ` stroke-dasharray="2 3"`
	}
	marker := ""
	if e.Type == diagram.EdgeArrow {
		marker = ` marker-end="url(#arrowhead)"`
	}

	fmt.Fprintf(buf, `    <path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f"%s%s/>`+"\n",
		sx, sy, c1x, c1y, c2x, c2y, ex, ey, stroke, width, dash, marker)

	if e.Label != "" {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle">%s</text>`+"\n",
			(sx+ex)/2, (sy+ey)/2-6, theme.FontFamily, edgeLabelSize, theme.Text, EscapeXML(e.Label))
	}
}

// renderListConnectors draws the outline connectors of the tree-list layout:
// an elbow from each row to its parent's indent column, plus vertical guides
// for every ancestor that still has rows to come. Everything derives from
// the metadata the layout left behind, no tree walk happens here.
func renderListConnectors(buf *bytes.Buffer, d *diagram.Diagram, boxes []Box, theme Theme) {
	indent := d.Layout.SpacingX()
	drop := diagram.ListLineHeight - listRowRise
	for i := range d.Nodes {
		m := d.Nodes[i].Meta
		if m == nil || m.TreeDepth == 0 {
			continue
		}
		b := boxes[i]
		col := b.X - indent + listElbowInset
		bottom := b.CY
		if !m.IsLast {
			bottom = b.CY + drop
		}
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f V %.1f M %.1f %.1f H %.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			col, b.CY-listRowRise, bottom, col, b.CY, b.X, theme.EdgeStroke, defaultEdgeStrokeWidth)
		for _, j := range m.AncestorLines {
			gx := b.X - float64(m.TreeDepth-j)*indent + listElbowInset
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
				gx, b.CY-listRowRise, gx, b.CY+drop, theme.EdgeStroke, defaultEdgeStrokeWidth)
		}
	}
}

func renderNodes(buf *bytes.Buffer, d *diagram.Diagram, boxes []Box, theme Theme) {
	buf.WriteString(`  <g class="nodes">` + "\n")
	for i := range d.Nodes {
		shapeFor(d.Nodes[i].Shape)(buf, boxes[i])
	}
	for i := range d.Nodes {
		n := &d.Nodes[i]
		b := boxes[i]
		renderLabel(buf, b.CX, b.CY, b.Label, n.FontSize(), theme.Text, theme.FontFamily)
	}
	buf.WriteString("  </g>\n")
}
