// Package io moves diagrams between the model and the filesystem.
//
// # Overview
//
// The engine packages work on in-memory models and byte slices; this
// package owns the file and stream plumbing around them:
//
//   - Reading diagram source text from files or stdin for the parsers
//   - Importing diagram JSON documents back into the model
//   - Exporting models as JSON and writing rendered artifacts
//
// # JSON Format
//
// Import and export use the model's native JSON form, the same
// document the structured parser accepts and the json render format
// produces:
//
//	{
//	  "type": "hierarchy",
//	  "nodes": [
//	    {"id": "ceo", "label": "CEO"},
//	    {"id": "cto", "label": "CTO"}
//	  ],
//	  "edges": [
//	    {"source": "ceo", "target": "cto"}
//	  ]
//	}
//
// Optional node fields (shape, x, y, width, height, style, meta) and
// the top-level layout block round-trip unchanged, so a laid-out
// diagram can be exported, edited and re-imported without losing its
// positions.
//
// # Stdin and Stdout
//
// [ReadSource] and [WriteArtifact] treat the path "-" (or an empty
// path) as stdin and stdout respectively, matching the CLI convention.
package io
