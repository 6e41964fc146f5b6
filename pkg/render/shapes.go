package render

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Box carries the resolved geometry and paint of one node, ready to draw.
// Coordinates are final canvas coordinates, after the padding shift.
type Box struct {
	ID         string
	Label      string
	X, Y, W, H float64
	CX, CY     float64
	Fill       string
	Stroke     string
	Width      float64 // stroke width
}

// ShapeFunc writes the SVG outline of one node. The label is drawn
// separately, centered in the box.
type ShapeFunc func(buf *bytes.Buffer, b Box)

var (
	shapeMu     sync.RWMutex
	customShape = map[diagram.Shape]ShapeFunc{}
)

// RegisterShape installs a custom shape, effective for subsequent renders.
// The built-in shape names are drawn directly and cannot be overridden.
func RegisterShape(name diagram.Shape, fn ShapeFunc) {
	if fn == nil {
		return
	}
	shapeMu.Lock()
	defer shapeMu.Unlock()
	customShape[name] = fn
}

// Shapes returns every name the renderer can draw: the built-in set in
// declaration order, then registered custom shapes sorted by name.
func Shapes() []diagram.Shape {
	names := []diagram.Shape{
		diagram.ShapeRectangle,
		diagram.ShapeCircle,
		diagram.ShapeDiamond,
		diagram.ShapeEllipse,
	}
	shapeMu.RLock()
	custom := make([]diagram.Shape, 0, len(customShape))
	for name := range customShape {
		custom = append(custom, name)
	}
	shapeMu.RUnlock()
	slices.Sort(custom)
	return append(names, custom...)
}

// shapeFor resolves a shape name: built-ins first, then the custom registry,
// then the rectangle fallback. The empty name means rectangle.
func shapeFor(s diagram.Shape) ShapeFunc {
	switch s {
	case diagram.ShapeRectangle, "":
		return drawRectangle
	case diagram.ShapeCircle:
		return drawCircle
	case diagram.ShapeDiamond:
		return drawDiamond
	case diagram.ShapeEllipse:
		return drawEllipse
	}
	shapeMu.RLock()
	fn, ok := customShape[s]
	shapeMu.RUnlock()
	if ok {
		return fn
	}
	return drawRectangle
}

func drawRectangle(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		b.X, b.Y, b.W, b.H, b.Fill, b.Stroke, b.Width)
}

func drawCircle(buf *bytes.Buffer, b Box) {
	r := min(b.W, b.H) / 2
	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		b.CX, b.CY, r, b.Fill, b.Stroke, b.Width)
}

func drawDiamond(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf, `    <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		b.CX, b.Y, b.X+b.W, b.CY, b.CX, b.Y+b.H, b.X, b.CY, b.Fill, b.Stroke, b.Width)
}

func drawEllipse(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf, `    <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		b.CX, b.CY, b.W/2, b.H/2, b.Fill, b.Stroke, b.Width)
}
