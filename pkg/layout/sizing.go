package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Label measurement approximates average glyph width as a fraction of the
// font size. It intentionally ignores per-glyph metrics so that sizing stays
// deterministic across platforms and font availability.
const (
	charWidthFactor  = 0.6
	lineHeightFactor = 1.5
	labelPadding     = 20.0
)

// AutoSize fills in width and height for every node that lacks them,
// estimated from the rendered label and the node's effective font size.
// Dimensions already present (for example from structured input) are kept.
func AutoSize(d *diagram.Diagram) {
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.Width > 0 && n.Height > 0 {
			continue
		}
		lines := strings.Split(n.DisplayLabel(), "\n")
		longest := 0
		for _, line := range lines {
			if c := utf8.RuneCountInString(line); c > longest {
				longest = c
			}
		}
		size := n.FontSize()
		if n.Width <= 0 {
			n.Width = float64(longest)*charWidthFactor*size + labelPadding
		}
		if n.Height <= 0 {
			n.Height = float64(len(lines))*size*lineHeightFactor + labelPadding
		}
	}
}
