package diagram_test

import (
	"fmt"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func ExampleDiagram_basic() {
	// Build a small org chart by hand: CEO with two reports.
	d := diagram.New(diagram.TypeHierarchy)
	_ = d.AddNode(diagram.Node{ID: "n1", Label: "CEO"})
	_ = d.AddNode(diagram.Node{ID: "n2", Label: "CTO"})
	_ = d.AddNode(diagram.Node{ID: "n3", Label: "CFO"})
	d.AddEdge(diagram.Edge{Source: "n1", Target: "n2"})
	d.AddEdge(diagram.Edge{Source: "n1", Target: "n3"})

	fmt.Println("Nodes:", d.NodeCount())
	fmt.Println("Edges:", d.EdgeCount())
	// Output:
	// Nodes: 3
	// Edges: 2
}

func ExampleDiagram_Root() {
	d := diagram.New(diagram.TypeHierarchy)
	_ = d.AddNode(diagram.Node{ID: "n1", Label: "CEO"})
	_ = d.AddNode(diagram.Node{ID: "n2", Label: "CTO"})
	d.AddEdge(diagram.Edge{Source: "n1", Target: "n2"})

	root, _ := d.Root()
	fmt.Println("Root:", root)
	// Output:
	// Root: n1
}
