// Package parse converts compact diagram text into the diagram model.
//
// Three input kinds are supported. The hierarchy syntax declares an org
// chart one parent per line:
//
//	CEO > [CTO, CFO]
//	CTO > [Engineering, Design] (h)
//
// The flow syntax declares a process one edge per line, with decision nodes
// marked by a trailing "?":
//
//	Start -> Valid Data?
//	Valid Data? -> Save [label: Ya]
//	Valid Data? -> Show Error [label: Tidak]
//
// Structured input is a JSON document decoded directly into
// [diagram.Diagram]. [Detect] picks the kind automatically; an explicit
// [Kind] passed to [ParseAs] overrides it.
//
// The line syntaxes never fail: unmatched lines become standalone nodes.
// Only structured input is rejected, when the JSON itself cannot be decoded.
//
// [diagram.Diagram]: github.com/Ak-sara/aksara-writer-sub001/pkg/diagram
package parse
