package parse

import (
	"fmt"
	"strings"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Kind identifies an input syntax accepted by [Parse].
type Kind string

// Input kinds. KindAuto triggers detection via [Detect].
const (
	KindAuto       Kind = ""
	KindHierarchy  Kind = "hierarchy"
	KindFlow       Kind = "flow"
	KindStructured Kind = "structured"
)

// Detect determines the input kind from the text itself: structured if the
// trimmed input starts with "{", hierarchy if it contains ">" outside an
// arrow, flow if it contains "->", hierarchy otherwise.
func Detect(text string) Kind {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return KindStructured
	case strings.Contains(trimmed, "->"):
		return KindFlow
	case strings.Contains(trimmed, ">"):
		return KindHierarchy
	default:
		return KindHierarchy
	}
}

// Parse converts compact diagram text into a diagram, auto-detecting the
// input kind. It is shorthand for ParseAs(text, KindAuto).
func Parse(text string) (*diagram.Diagram, error) {
	return ParseAs(text, KindAuto)
}

// ParseAs converts diagram text using an explicit input kind. An empty or
// unknown kind falls back to detection. Only structured input can fail;
// the two line syntaxes degrade unmatched lines into standalone nodes.
func ParseAs(text string, kind Kind) (*diagram.Diagram, error) {
	switch kind {
	case KindStructured:
		return Structured(text)
	case KindHierarchy:
		return Hierarchy(text), nil
	case KindFlow:
		return Flow(text), nil
	default:
		return ParseAs(text, Detect(text))
	}
}

// builder accumulates nodes for one parse invocation. Node IDs are assigned
// incrementally (n1, n2, ...) keyed by exact label text, so two lines naming
// the same label share one node. The counter is local to the builder and
// never shared across calls.
type builder struct {
	d    *diagram.Diagram
	ids  map[string]string
	next int
}

func newBuilder(t diagram.Type) *builder {
	return &builder{
		d:    diagram.New(t),
		ids:  make(map[string]string),
		next: 1,
	}
}

// node returns the ID for the given label, creating the node on first use.
func (b *builder) node(label string) string {
	if id, ok := b.ids[label]; ok {
		return id
	}
	id := fmt.Sprintf("n%d", b.next)
	b.next++
	b.ids[label] = id
	b.d.Nodes = append(b.d.Nodes, diagram.Node{ID: id, Label: label})
	return id
}

// decisionNode resolves a flow node label, treating a trailing "?" as a
// decision marker: the node takes the diamond shape and the "?" is stripped
// from the displayed label.
func (b *builder) decisionNode(raw string) string {
	label := strings.TrimSpace(raw)
	decision := strings.HasSuffix(label, "?")
	if decision {
		label = strings.TrimSpace(strings.TrimSuffix(label, "?"))
	}
	id := b.node(label)
	if decision {
		if n, ok := b.d.NodeByID(id); ok {
			n.Shape = diagram.ShapeDiamond
		}
	}
	return id
}
