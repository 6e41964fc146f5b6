// Package render draws laid-out diagrams as SVG.
//
// # Overview
//
// [RenderSVG] turns a diagram whose nodes carry positions and sizes into a
// standalone SVG document: a defs block with the shared arrowhead marker,
// one group of edges, one group of nodes. The bounding box of all nodes is
// measured first and everything is shifted so the drawing sits inside a
// padded, non-negative canvas. Nodes the layout never positioned still
// render at their zero coordinates; edges pointing at unknown nodes are
// dropped silently.
//
// # Shapes
//
// The four built-in shapes (rectangle, circle, diamond, ellipse) are drawn
// directly. [RegisterShape] adds custom shapes for other names; names that
// resolve nowhere fall back to the rectangle so no input fails to draw.
//
// # Connectors
//
// Ordinary layouts connect boxes with cubic bezier curves that leave along
// the dominant axis between the endpoints. The tree-list layout instead
// gets file-tree elbows and vertical guides, computed from the metadata the
// layout attached to each node.
package render
