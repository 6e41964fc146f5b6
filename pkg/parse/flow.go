package parse

import (
	"regexp"
	"strings"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// flowLine matches "A -> B [label: X]". The bracketed suffix is optional
// and becomes the edge label.
var flowLine = regexp.MustCompile(`^(.+?)\s*->\s*(.+?)\s*(?:\[label:\s*([^\]]*)\])?\s*$`)

// Flow parses the process-flow syntax. Each matched line declares one
// directed edge; a node label ending in "?" takes the diamond shape with
// the "?" stripped. Lines without an arrow become standalone nodes.
func Flow(text string) *diagram.Diagram {
	b := newBuilder(diagram.TypeFlow)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := flowLine.FindStringSubmatch(line)
		if m == nil {
			b.decisionNode(line)
			continue
		}

		sourceID := b.decisionNode(m[1])
		targetID := b.decisionNode(m[2])
		b.d.AddEdge(diagram.Edge{
			Source: sourceID,
			Target: targetID,
			Label:  strings.TrimSpace(m[3]),
			Type:   diagram.EdgeArrow,
		})
	}

	return b.d
}
