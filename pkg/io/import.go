package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// ReadSource reads diagram source text from path. The path "-" (or an
// empty path) reads stdin instead.
func ReadSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadDiagram decodes a JSON diagram document from r into the model.
//
// The decoded diagram is validated: every node needs a non-empty,
// unique ID. Edge endpoints are not checked here; edges referencing
// unknown nodes stay in the model and the renderers skip them.
//
// The returned diagram is independent of r and can be modified freely.
// ReadDiagram does not close r.
func ReadDiagram(r io.Reader) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ImportDiagram reads the JSON diagram file at path and returns the
// decoded model.
//
// ImportDiagram opens the file, decodes it using [ReadDiagram], and
// closes the file. Errors wrap the underlying cause with the file path
// for context, and malformed documents fail with the same validation
// errors as [ReadDiagram].
func ImportDiagram(path string) (*diagram.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := ReadDiagram(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return d, nil
}
