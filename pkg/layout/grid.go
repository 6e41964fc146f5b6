package layout

import (
	"math"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Grid arranges nodes row-major in a near-square grid, ignoring edges
// entirely. It is the fallback for unknown algorithms, so it must work for
// any diagram, connected or not.
func Grid(d *diagram.Diagram) {
	n := len(d.Nodes)
	if n == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	sx, sy := d.Layout.SpacingX(), d.Layout.SpacingY()
	for i := range d.Nodes {
		d.Nodes[i].X = float64(i%cols) * sx
		d.Nodes[i].Y = float64(i/cols) * sy
	}
}
