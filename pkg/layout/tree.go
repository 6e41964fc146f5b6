package layout

import (
	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// siblingGap separates sibling subtrees along the packing axis.
const siblingGap = 30.0

// buildChildren rebuilds the tree under rootIdx as an adjacency table over
// node slice indices. Edges are scanned in declaration order; the first edge
// that reaches a node adopts it, so cycles and diamond shares terminate with
// a deterministic parent. Self loops and edges with missing endpoints are
// ignored.
func buildChildren(d *diagram.Diagram, rootIdx int) [][]int {
	index := d.NodeIndex()
	children := make([][]int, len(d.Nodes))
	adopted := make([]bool, len(d.Nodes))
	adopted[rootIdx] = true
	for _, e := range d.Edges {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok || si == ti || adopted[ti] {
			continue
		}
		adopted[ti] = true
		children[si] = append(children[si], ti)
	}
	return children
}

// treeLayout carries the per-run state of the tree algorithm: the adjacency
// table and the subtree extents, all indexed by node position. Positions in
// breadth/depth frame coordinates are written straight into the diagram.
type treeLayout struct {
	d        *diagram.Diagram
	children [][]int
	extB     []float64 // subtree extent along the breadth axis
	extD     []float64 // subtree extent along the depth axis
	placed   []bool
	cfg      diagram.LayoutConfig
}

// Tree lays out the diagram as a rooted tree growing in the configured
// direction. Children either sit side by side below (or beside) their parent
// or stack in an indented column next to it, depending on each node's child
// arrangement. Mirrored directions run the anchored pass first and reflect
// the result about its extent. Nodes unreachable from the root keep their
// prior coordinates; the algorithm never reads positions, so reapplying it
// yields identical output.
func Tree(d *diagram.Diagram) {
	rootID, ok := d.Root()
	if !ok {
		return
	}
	rootIdx := d.NodeIndex()[rootID]

	t := &treeLayout{
		d:        d,
		children: buildChildren(d, rootIdx),
		extB:     make([]float64, len(d.Nodes)),
		extD:     make([]float64, len(d.Nodes)),
		placed:   make([]bool, len(d.Nodes)),
		cfg:      d.Layout,
	}

	base := baseFrame(d.Layout.Direction)
	t.measure(rootIdx, base)
	t.place(rootIdx, 0, 0, base)
	if d.Layout.Direction.IsMirrored() {
		t.mirror(d.Layout.Direction)
	}
}

// baseFrame collapses a direction onto the anchored pass that computes it.
// Bottom-to-top and right-to-left reuse the top-to-bottom and left-to-right
// passes and are mirrored afterwards.
func baseFrame(dir diagram.Direction) diagram.Direction {
	if dir.IsHorizontal() {
		return diagram.DirectionLeftToRight
	}
	return diagram.DirectionTopToBottom
}

// childFrame returns the frame in which node i arranges its children: the
// node's direction override when present, otherwise the inherited frame.
func (t *treeLayout) childFrame(i int, frame diagram.Direction) diagram.Direction {
	if o := t.d.Nodes[i].ChildDirection(); o != "" {
		return baseFrame(o)
	}
	return frame
}

// horizontal reports whether node i places its children side by side.
func (t *treeLayout) horizontal(i int) bool {
	return t.d.Nodes[i].ChildArrangement() == diagram.ChildLayoutHorizontal
}

// sizeIn returns the node's size along the breadth and depth axes of a frame.
func (t *treeLayout) sizeIn(i int, frame diagram.Direction) (b, d float64) {
	n := &t.d.Nodes[i]
	if frame.IsHorizontal() {
		return n.Height, n.Width
	}
	return n.Width, n.Height
}

// setPos maps frame coordinates onto the node's screen position.
func (t *treeLayout) setPos(i int, b, d float64, frame diagram.Direction) {
	n := &t.d.Nodes[i]
	if frame.IsHorizontal() {
		n.X, n.Y = d, b
	} else {
		n.X, n.Y = b, d
	}
	t.placed[i] = true
}

// framePos reads the node's screen position back as frame coordinates.
func (t *treeLayout) framePos(i int, frame diagram.Direction) (b, d float64) {
	n := &t.d.Nodes[i]
	if frame.IsHorizontal() {
		return n.Y, n.X
	}
	return n.X, n.Y
}

// depthGap is the parent-to-child distance along the depth axis.
func (t *treeLayout) depthGap(frame diagram.Direction) float64 {
	if frame.IsHorizontal() {
		return t.cfg.SpacingX()
	}
	return t.cfg.SpacingY()
}

// breadthGap is the offset of a stacked child column from its parent.
func (t *treeLayout) breadthGap(frame diagram.Direction) float64 {
	if frame.IsHorizontal() {
		return t.cfg.SpacingY()
	}
	return t.cfg.SpacingX()
}

// measure computes subtree extents bottom-up. A side-by-side parent reserves
// the width of its children row and the depth of its tallest child; a node
// with a stacked column reserves its own size plus the offset column. Leaves
// reserve exactly their own box.
func (t *treeLayout) measure(i int, frame diagram.Direction) {
	child := t.childFrame(i, frame)
	kids := t.children[i]
	for _, k := range kids {
		t.measure(k, child)
	}

	bsize, dsize := t.sizeIn(i, frame)
	if len(kids) == 0 {
		t.extB[i] = bsize
		t.extD[i] = dsize
		return
	}

	if t.horizontal(i) {
		row := -siblingGap
		deepest := 0.0
		for _, k := range kids {
			row += t.extB[k] + siblingGap
			deepest = max(deepest, t.extD[k])
		}
		t.extB[i] = max(bsize, row)
		t.extD[i] = dsize + t.depthGap(child) + deepest
		return
	}

	column := -siblingGap
	widest := 0.0
	for _, k := range kids {
		column += t.extD[k] + siblingGap
		widest = max(widest, t.extB[k])
	}
	t.extB[i] = bsize + t.breadthGap(child) + widest
	t.extD[i] = max(dsize, column)
}

// place assigns node i and its subtree positions within the span starting at
// (spanB, spanD) in the given frame. Side-by-side parents are centered over
// their children row; stacked columns are centered on the parent but never
// rise above its leading edge.
func (t *treeLayout) place(i int, spanB, spanD float64, frame diagram.Direction) {
	kids := t.children[i]
	bsize, _ := t.sizeIn(i, frame)
	if len(kids) > 0 && t.horizontal(i) {
		t.setPos(i, spanB+(t.extB[i]-bsize)/2, spanD, frame)
	} else {
		t.setPos(i, spanB, spanD, frame)
	}
	if len(kids) == 0 {
		return
	}

	child := t.childFrame(i, frame)
	nb, nd := t.framePos(i, child)
	cb, cd := t.sizeIn(i, child)

	if t.horizontal(i) {
		row := -siblingGap
		for _, k := range kids {
			row += t.extB[k] + siblingGap
		}
		cursor := nb + cb/2 - row/2
		rowD := nd + cd + t.depthGap(child)
		for _, k := range kids {
			t.place(k, cursor, rowD, child)
			cursor += t.extB[k] + siblingGap
		}
		return
	}

	column := -siblingGap
	for _, k := range kids {
		column += t.extD[k] + siblingGap
	}
	colB := nb + cb + t.breadthGap(child)
	cursor := nd + cd/2 - column/2
	if cursor < nd {
		// the centered column may not rise above the parent's leading edge
		cursor = nd
	}
	for _, k := range kids {
		t.place(k, colB, cursor, child)
		cursor += t.extD[k] + siblingGap
	}
}

// mirror reflects placed nodes about the occupied extent, turning the
// anchored pass into its bottom-to-top or right-to-left variant.
func (t *treeLayout) mirror(dir diagram.Direction) {
	extent := 0.0
	for i := range t.d.Nodes {
		if !t.placed[i] {
			continue
		}
		n := &t.d.Nodes[i]
		if dir == diagram.DirectionRightToLeft {
			extent = max(extent, n.X+n.Width)
		} else {
			extent = max(extent, n.Y+n.Height)
		}
	}
	for i := range t.d.Nodes {
		if !t.placed[i] {
			continue
		}
		n := &t.d.Nodes[i]
		if dir == diagram.DirectionRightToLeft {
			n.X = extent - n.X - n.Width
		} else {
			n.Y = extent - n.Y - n.Height
		}
	}
}
