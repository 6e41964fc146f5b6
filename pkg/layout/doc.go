// Package layout assigns coordinates to diagram nodes.
//
// # Overview
//
// The package provides three built-in algorithms, selected through the
// diagram's layout configuration:
//
//   - tree: a rooted tree growing top-to-bottom by default, with per-node
//     child arrangements and direction overrides
//   - grid: a near-square row-major grid that ignores edges
//   - tree-list: an indented outline, one node per line, annotated with the
//     metadata the renderer needs to draw file-tree connectors
//
// [Apply] dispatches on the configured name. Unknown names consult the
// custom registry populated via [Register] and fall back to the grid, so a
// misconfigured diagram still renders.
//
// # Sizing
//
// [AutoSize] estimates node dimensions from label text and font size before
// any positions are computed. Running it is the caller's responsibility;
// the engine package does so as part of its pipeline.
//
// # Determinism
//
// Algorithms only ever write positions, never read them, so applying the
// same layout twice produces identical coordinates. Tree construction
// adopts each node at the first edge that reaches it, which both fixes the
// traversal order and guarantees termination on cyclic input.
package layout
