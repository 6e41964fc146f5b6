// Package diagram defines the model shared by every engine stage: nodes,
// edges, layout configuration and the diagram that ties them together.
//
// # Overview
//
// A [Diagram] moves through the engine as a single mutable value. The parser
// (or a structured JSON document) constructs it, auto-sizing fills missing
// node dimensions, a layout algorithm assigns coordinates, and the renderer
// consumes it read-only. No diagram instance persists across calls.
//
// # Basic Usage
//
// Build a diagram by hand with [New], [Diagram.AddNode] and
// [Diagram.AddEdge], or let the parse package construct one from text:
//
//	d := diagram.New(diagram.TypeHierarchy)
//	d.AddNode(diagram.Node{ID: "n1", Label: "CEO"})
//	d.AddNode(diagram.Node{ID: "n2", Label: "CTO"})
//	d.AddEdge(diagram.Edge{Source: "n1", Target: "n2"})
//
// # Graceful Degradation
//
// The model deliberately tolerates structural irregularity. Edges may
// reference nodes that do not exist; they are skipped when drawn. An empty
// node list is a valid diagram at every stage. Only node IDs are validated,
// by [Diagram.AddNode] and [Diagram.Validate].
//
// # Layout Metadata
//
// [Meta] is the typed side-channel between stages. The hierarchy parser sets
// ChildLayout and ChildDirection from parenthesized suffixes; the tree-list
// layout records TreeDepth, IsLast and AncestorLines so the renderer can
// draw outline connectors from metadata alone.
//
// # Serialization
//
// All types carry json tags (the structured input format decodes directly
// into them) and bson tags for the MongoDB-backed store.
package diagram
