package parse

import (
	"encoding/json"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/errors"
)

// Structured decodes a JSON diagram document directly into the model.
// This is the engine's only loud failure: a malformed document is rejected
// with the underlying decode error preserved as the cause. Missing layout
// fields are filled with the parse defaults.
func Structured(text string) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to decode structured diagram")
	}
	applyLayoutDefaults(&d)
	return &d, nil
}

// applyLayoutDefaults fills unset layout fields on a decoded diagram so the
// structured path and the text syntaxes agree on defaults. Fields the
// document already specifies are left untouched.
func applyLayoutDefaults(d *diagram.Diagram) {
	if d.Layout.Algorithm == "" {
		d.Layout.Algorithm = diagram.AlgorithmTree
	}
	if d.Layout.Direction == "" {
		d.Layout.Direction = diagram.DirectionTopToBottom
	}
	if d.Layout.Spacing.X == 0 {
		d.Layout.Spacing.X = diagram.DefaultSpacingX
	}
	if d.Layout.Spacing.Y == 0 {
		d.Layout.Spacing.Y = diagram.DefaultSpacingY
	}
}
