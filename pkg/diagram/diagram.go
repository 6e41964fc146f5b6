package diagram

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [Diagram.AddNode] and [Diagram.Validate]
	// when a node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Diagram.AddNode] and [Diagram.Validate]
	// when a node with the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Type identifies the diagram family a parser produced. Structured input may
// carry any type tag; the two compact text syntaxes produce these values.
type Type string

// Diagram types produced by the text parsers.
const (
	TypeHierarchy Type = "hierarchy"
	TypeFlow      Type = "flow"
)

// Shape selects how a node is drawn. The four built-in shapes form a closed
// set; any other value is looked up in the renderer's custom-shape registry
// and falls back to [ShapeRectangle] when unregistered.
type Shape string

// Built-in shapes.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeDiamond   Shape = "diamond"
	ShapeEllipse   Shape = "ellipse"
)

// IsBuiltin reports whether the shape is one of the built-in variants.
func (s Shape) IsBuiltin() bool {
	switch s {
	case ShapeRectangle, ShapeCircle, ShapeDiamond, ShapeEllipse:
		return true
	}
	return false
}

// Direction is the primary flow direction of a layout. Top-to-bottom and
// bottom-to-top trees grow along the vertical axis; left-to-right and
// right-to-left trees grow along the horizontal axis.
type Direction string

// Layout directions.
const (
	DirectionTopToBottom Direction = "top-to-bottom"
	DirectionBottomToTop Direction = "bottom-to-top"
	DirectionLeftToRight Direction = "left-to-right"
	DirectionRightToLeft Direction = "right-to-left"
)

// ParseDirection resolves a direction from its canonical form or one of the
// compact aliases used by the hierarchy syntax (TB, TD, BT, LR, RL).
// TD is an alias for top-to-bottom. Matching is case-insensitive.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tb", "td", "top-to-bottom":
		return DirectionTopToBottom, true
	case "bt", "bottom-to-top":
		return DirectionBottomToTop, true
	case "lr", "left-to-right":
		return DirectionLeftToRight, true
	case "rl", "right-to-left":
		return DirectionRightToLeft, true
	}
	return "", false
}

// IsHorizontal reports whether the direction grows along the horizontal axis.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeftToRight || d == DirectionRightToLeft
}

// IsMirrored reports whether the direction is produced by mirroring an
// anchored pass: bottom-to-top reflects the vertical axis, right-to-left the
// horizontal axis.
func (d Direction) IsMirrored() bool {
	return d == DirectionBottomToTop || d == DirectionRightToLeft
}

// ChildLayout selects how a node arranges its children: side by side along
// the breadth axis (horizontal) or stacked in an offset column (vertical).
// The empty value means vertical, the default arrangement.
type ChildLayout string

// Child arrangements.
const (
	ChildLayoutHorizontal ChildLayout = "horizontal"
	ChildLayoutVertical   ChildLayout = "vertical"
)

// ParseChildLayout resolves a child arrangement from its canonical form or
// the single-letter aliases used by the hierarchy syntax (h, v).
func ParseChildLayout(s string) (ChildLayout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return ChildLayoutHorizontal, true
	case "v", "vertical":
		return ChildLayoutVertical, true
	}
	return "", false
}

// EdgeType selects the stroke treatment of a connector.
type EdgeType string

// Edge connector types. The empty value draws as solid without an arrowhead.
const (
	EdgeSolid  EdgeType = "solid"
	EdgeDashed EdgeType = "dashed"
	EdgeDotted EdgeType = "dotted"
	EdgeArrow  EdgeType = "arrow"
)

// Algorithm names a layout strategy. The three built-ins form a closed set;
// any other value is looked up in the layout registry and falls back to
// [AlgorithmGrid] when unregistered.
type Algorithm string

// Built-in layout algorithms.
const (
	AlgorithmTree     Algorithm = "tree"
	AlgorithmGrid     Algorithm = "grid"
	AlgorithmTreeList Algorithm = "tree-list"
)

// Defaults shared across sizing, layout and rendering.
const (
	// DefaultFontSize is used when a node's style does not set one.
	DefaultFontSize = 14.0

	// DefaultSpacingX and DefaultSpacingY are the layout gaps used when a
	// diagram's spacing is unset.
	DefaultSpacingX = 150.0
	DefaultSpacingY = 100.0

	// DefaultPadding is added on every side of the rendered bounding box.
	DefaultPadding = 50.0

	// ListLineHeight is the fixed row height of the tree-list layout. The
	// renderer derives connector spans from the same value.
	ListLineHeight = 60.0
)

// Style holds the optional visual attributes of a node or edge.
// Zero fields mean "use the renderer default".
type Style struct {
	Fill        string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty" bson:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty" bson:"stroke_width,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty" bson:"font_size,omitempty"`
}

// Meta is the per-node side-channel between parser, layout and renderer.
// The parser fills ChildLayout and ChildDirection from hierarchy suffixes;
// the tree-list layout fills TreeDepth, IsLast and AncestorLines so the
// renderer can draw outline connectors without re-walking the tree.
type Meta struct {
	ChildLayout    ChildLayout `json:"childLayout,omitempty" bson:"child_layout,omitempty"`
	ChildDirection Direction   `json:"childDirection,omitempty" bson:"child_direction,omitempty"`
	TreeDepth      int         `json:"treeDepth,omitempty" bson:"tree_depth,omitempty"`
	IsLast         bool        `json:"isLast,omitempty" bson:"is_last,omitempty"`
	AncestorLines  []int       `json:"ancestorLines,omitempty" bson:"ancestor_lines,omitempty"`
}

// Node is a labeled vertex of a diagram. X, Y, Width and Height are zero
// until auto-sizing and a layout algorithm have run; a zero Width or Height
// means "compute from the label".
type Node struct {
	ID     string  `json:"id" bson:"id"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	Shape  Shape   `json:"shape,omitempty" bson:"shape,omitempty"`
	X      float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y      float64 `json:"y,omitempty" bson:"y,omitempty"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
	Style  *Style  `json:"style,omitempty" bson:"style,omitempty"`
	Meta   *Meta   `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// FontSize returns the node's font size, falling back to [DefaultFontSize].
func (n *Node) FontSize() float64 {
	if n.Style != nil && n.Style.FontSize > 0 {
		return n.Style.FontSize
	}
	return DefaultFontSize
}

// EnsureMeta returns the node's Meta, allocating it on first use.
func (n *Node) EnsureMeta() *Meta {
	if n.Meta == nil {
		n.Meta = &Meta{}
	}
	return n.Meta
}

// ChildArrangement returns the node's child arrangement, or the empty value
// (vertical) when no metadata is attached.
func (n *Node) ChildArrangement() ChildLayout {
	if n.Meta == nil {
		return ""
	}
	return n.Meta.ChildLayout
}

// ChildDirection returns the node's per-subtree direction override, or the
// empty value when no override is set.
func (n *Node) ChildDirection() Direction {
	if n.Meta == nil {
		return ""
	}
	return n.Meta.ChildDirection
}

// Edge is a directed connection between two nodes. Source or Target may
// reference a node that does not exist; such edges are tolerated and simply
// skipped at render time.
type Edge struct {
	ID     string   `json:"id,omitempty" bson:"id,omitempty"`
	Source string   `json:"source" bson:"source"`
	Target string   `json:"target" bson:"target"`
	Label  string   `json:"label,omitempty" bson:"label,omitempty"`
	Type   EdgeType `json:"type,omitempty" bson:"type,omitempty"`
	Style  *Style   `json:"style,omitempty" bson:"style,omitempty"`
}

// Spacing is the gap configuration of a layout, in user units.
type Spacing struct {
	X float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y float64 `json:"y,omitempty" bson:"y,omitempty"`
}

// LayoutConfig selects and parameterizes a layout algorithm.
type LayoutConfig struct {
	Algorithm Algorithm `json:"algorithm,omitempty" bson:"algorithm,omitempty"`
	Direction Direction `json:"direction,omitempty" bson:"direction,omitempty"`
	Spacing   Spacing   `json:"spacing,omitempty" bson:"spacing,omitempty"`
	Padding   float64   `json:"padding,omitempty" bson:"padding,omitempty"`
}

// DefaultLayout returns the layout applied to parsed diagrams that do not
// specify one: tree, top-to-bottom, 150x100 spacing.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Algorithm: AlgorithmTree,
		Direction: DirectionTopToBottom,
		Spacing:   Spacing{X: DefaultSpacingX, Y: DefaultSpacingY},
	}
}

// SpacingX returns the horizontal gap, falling back to [DefaultSpacingX].
func (c LayoutConfig) SpacingX() float64 {
	if c.Spacing.X > 0 {
		return c.Spacing.X
	}
	return DefaultSpacingX
}

// SpacingY returns the vertical gap, falling back to [DefaultSpacingY].
func (c LayoutConfig) SpacingY() float64 {
	if c.Spacing.Y > 0 {
		return c.Spacing.Y
	}
	return DefaultSpacingY
}

// PaddingOrDefault returns the render padding, falling back to [DefaultPadding].
func (c LayoutConfig) PaddingOrDefault() float64 {
	if c.Padding > 0 {
		return c.Padding
	}
	return DefaultPadding
}

// Diagram is the node/edge/layout triple all engine stages read and write.
// A diagram is created fresh per parse or construction call, enriched in
// place (size, then position, then drawing metadata) and consumed read-only
// by the renderer. It is not safe for concurrent mutation.
type Diagram struct {
	Type   Type         `json:"type,omitempty" bson:"type,omitempty"`
	Nodes  []Node       `json:"nodes" bson:"nodes"`
	Edges  []Edge       `json:"edges" bson:"edges"`
	Layout LayoutConfig `json:"layout,omitempty" bson:"layout,omitempty"`

	// Optional canvas hints, consumed by render options when set.
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
}

// New creates an empty diagram of the given type with the default layout.
func New(t Type) *Diagram {
	return &Diagram{Type: t, Layout: DefaultLayout()}
}

// AddNode appends a node, rejecting empty and duplicate IDs.
func (d *Diagram) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	for i := range d.Nodes {
		if d.Nodes[i].ID == n.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
	}
	d.Nodes = append(d.Nodes, n)
	return nil
}

// AddEdge appends an edge. Endpoints are not checked: edges naming missing
// nodes are part of the model and are skipped at render time.
func (d *Diagram) AddEdge(e Edge) {
	d.Edges = append(d.Edges, e)
}

// NodeByID returns a pointer to the node with the given ID, or nil and false.
func (d *Diagram) NodeByID(id string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// NodeIndex returns a lookup from node ID to its slice index.
// When duplicate IDs slipped past validation, the first occurrence wins.
func (d *Diagram) NodeIndex() map[string]int {
	m := make(map[string]int, len(d.Nodes))
	for i := range d.Nodes {
		if _, ok := m[d.Nodes[i].ID]; !ok {
			m[d.Nodes[i].ID] = i
		}
	}
	return m
}

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.Nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.Edges) }

// Roots returns the IDs of nodes with no incoming edge, in input order.
func (d *Diagram) Roots() []string {
	incoming := make(map[string]bool, len(d.Edges))
	for _, e := range d.Edges {
		incoming[e.Target] = true
	}
	var roots []string
	for i := range d.Nodes {
		if !incoming[d.Nodes[i].ID] {
			roots = append(roots, d.Nodes[i].ID)
		}
	}
	return roots
}

// Root returns the ID of the node tree layouts grow from: the first node
// with no incoming edge, or the first node in input order when none or
// several qualify only ambiguously. Returns false for an empty diagram.
func (d *Diagram) Root() (string, bool) {
	if len(d.Nodes) == 0 {
		return "", false
	}
	incoming := make(map[string]bool, len(d.Edges))
	for _, e := range d.Edges {
		incoming[e.Target] = true
	}
	for i := range d.Nodes {
		if !incoming[d.Nodes[i].ID] {
			return d.Nodes[i].ID, true
		}
	}
	return d.Nodes[0].ID, true
}

// Validate checks that all node IDs are non-empty and unique.
// Edges are not validated: missing endpoints are tolerated and skipped later.
func (d *Diagram) Validate() error {
	seen := make(map[string]struct{}, len(d.Nodes))
	for i := range d.Nodes {
		id := d.Nodes[i].ID
		if id == "" {
			return ErrInvalidNodeID
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy sharing no mutable state with the original.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}
	out := &Diagram{
		Type:   d.Type,
		Layout: d.Layout,
		Width:  d.Width,
		Height: d.Height,
	}
	if d.Nodes != nil {
		out.Nodes = make([]Node, len(d.Nodes))
		for i, n := range d.Nodes {
			cn := n
			if n.Style != nil {
				s := *n.Style
				cn.Style = &s
			}
			if n.Meta != nil {
				m := *n.Meta
				m.AncestorLines = slices.Clone(n.Meta.AncestorLines)
				cn.Meta = &m
			}
			out.Nodes[i] = cn
		}
	}
	if d.Edges != nil {
		out.Edges = make([]Edge, len(d.Edges))
		for i, e := range d.Edges {
			ce := e
			if e.Style != nil {
				s := *e.Style
				ce.Style = &s
			}
			out.Edges[i] = ce
		}
	}
	return out
}
