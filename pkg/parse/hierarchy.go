package parse

import (
	"regexp"
	"strings"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// hierarchyLine matches "Parent > [ChildA, ChildB] (option)". The bracketed
// list declares one edge per child; the optional parenthesized suffix sets
// per-parent layout metadata.
var hierarchyLine = regexp.MustCompile(`^(.+?)\s*>\s*\[([^\]]*)\]\s*(?:\(([^)]*)\))?\s*$`)

// Hierarchy parses the org-chart syntax. Each matched line declares a parent
// and its children in order; unmatched non-blank lines become standalone
// nodes. The option suffix accepts h/horizontal or v/vertical for the child
// arrangement and LR/TB/TD/RL/BT for a per-node direction override.
func Hierarchy(text string) *diagram.Diagram {
	b := newBuilder(diagram.TypeHierarchy)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := hierarchyLine.FindStringSubmatch(line)
		if m == nil {
			b.node(line)
			continue
		}

		parentID := b.node(strings.TrimSpace(m[1]))
		for _, child := range strings.Split(m[2], ",") {
			child = strings.TrimSpace(child)
			if child == "" {
				continue
			}
			childID := b.node(child)
			b.d.AddEdge(diagram.Edge{Source: parentID, Target: childID})
		}

		if m[3] != "" {
			applyHierarchyOption(b.d, parentID, m[3])
		}
	}

	return b.d
}

// applyHierarchyOption interprets the parenthesized suffix of a hierarchy
// line. Tokens may set the child arrangement, a direction override, or both;
// unrecognized tokens are ignored.
func applyHierarchyOption(d *diagram.Diagram, parentID, option string) {
	parent, ok := d.NodeByID(parentID)
	if !ok {
		return
	}
	for _, token := range strings.FieldsFunc(option, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if cl, ok := diagram.ParseChildLayout(token); ok {
			parent.EnsureMeta().ChildLayout = cl
			continue
		}
		if dir, ok := diagram.ParseDirection(token); ok {
			parent.EnsureMeta().ChildDirection = dir
		}
	}
}
