package layout

import (
	"slices"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// TreeList lays out the tree as an indented outline, one node per line in
// pre-order: x grows with depth, y with the running line counter. Each
// visited node is annotated with its depth, whether it is the last child of
// its parent, and the indent columns that still need a vertical guide, so
// the renderer can draw file-tree connectors from the metadata alone.
func TreeList(d *diagram.Diagram) {
	rootID, ok := d.Root()
	if !ok {
		return
	}
	rootIdx := d.NodeIndex()[rootID]
	children := buildChildren(d, rootIdx)

	indent := d.Layout.SpacingX()
	line := 0

	var walk func(i, depth int, last bool, guides []int)
	walk = func(i, depth int, last bool, guides []int) {
		n := &d.Nodes[i]
		n.X = float64(depth) * indent
		n.Y = float64(line) * diagram.ListLineHeight
		line++

		m := n.EnsureMeta()
		m.TreeDepth = depth
		m.IsLast = last
		m.AncestorLines = slices.Clone(guides)

		kids := children[i]
		if len(kids) == 0 {
			return
		}
		next := guides
		if !last && depth > 0 {
			// rows under a non-last node keep its parent's guide open
			next = append(slices.Clone(guides), depth-1)
		}
		for ci, k := range kids {
			walk(k, depth+1, ci == len(kids)-1, next)
		}
	}
	walk(rootIdx, 0, true, nil)
}
