package layout

import (
	"math"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAutoSize(t *testing.T) {
	tests := []struct {
		name       string
		node       diagram.Node
		wantWidth  float64
		wantHeight float64
	}{
		{
			name:       "short label default font",
			node:       diagram.Node{ID: "n1", Label: "Hi"},
			wantWidth:  36.8, // 2 chars * 0.6 * 14 + 20
			wantHeight: 41,   // 1 line * 14 * 1.5 + 20
		},
		{
			name:       "multiline uses longest line",
			node:       diagram.Node{ID: "n1", Label: "A\nBBBB\nCC"},
			wantWidth:  4*0.6*14 + 20,
			wantHeight: 3*14*1.5 + 20,
		},
		{
			name:       "custom font size",
			node:       diagram.Node{ID: "n1", Label: "Hi", Style: &diagram.Style{FontSize: 20}},
			wantWidth:  2*0.6*20 + 20,
			wantHeight: 1*20*1.5 + 20,
		},
		{
			name:       "empty label measures ID",
			node:       diagram.Node{ID: "n1"},
			wantWidth:  2*0.6*14 + 20,
			wantHeight: 41,
		},
		{
			name:       "explicit dimensions kept",
			node:       diagram.Node{ID: "n1", Label: "Hi", Width: 200, Height: 80},
			wantWidth:  200,
			wantHeight: 80,
		},
		{
			name:       "missing height filled in",
			node:       diagram.Node{ID: "n1", Label: "Hi", Width: 200},
			wantWidth:  200,
			wantHeight: 41,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New(diagram.TypeHierarchy)
			if err := d.AddNode(tt.node); err != nil {
				t.Fatalf("AddNode: %v", err)
			}
			AutoSize(d)
			got := d.Nodes[0]
			if !almost(got.Width, tt.wantWidth) {
				t.Errorf("Width = %v, want %v", got.Width, tt.wantWidth)
			}
			if !almost(got.Height, tt.wantHeight) {
				t.Errorf("Height = %v, want %v", got.Height, tt.wantHeight)
			}
		})
	}
}
