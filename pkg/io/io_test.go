package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

func sampleDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New(diagram.TypeHierarchy)
	if err := d.AddNode(diagram.Node{ID: "ceo", Label: "CEO", X: 10, Y: 20}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddNode(diagram.Node{ID: "cto", Label: "CTO"}); err != nil {
		t.Fatal(err)
	}
	d.AddEdge(diagram.Edge{Source: "ceo", Target: "cto"})
	return d
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.json")

	if err := ExportJSON(sampleDiagram(t), path); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	d, err := ImportDiagram(path)
	if err != nil {
		t.Fatalf("ImportDiagram failed: %v", err)
	}

	if d.NodeCount() != 2 || d.EdgeCount() != 1 {
		t.Errorf("got %d nodes, %d edges", d.NodeCount(), d.EdgeCount())
	}
	n, ok := d.NodeByID("ceo")
	if !ok {
		t.Fatal("node ceo missing after round trip")
	}
	if n.Label != "CEO" || n.X != 10 || n.Y != 20 {
		t.Errorf("node fields lost: %+v", n)
	}
}

func TestReadDiagram(t *testing.T) {
	doc := `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"source": "a", "target": "b"}]}`
	d, err := ReadDiagram(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadDiagram failed: %v", err)
	}
	if d.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", d.NodeCount())
	}
}

func TestReadDiagramRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"nodes": [`},
		{"empty node id", `{"nodes": [{"id": ""}], "edges": []}`},
		{"duplicate node id", `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadDiagram(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestImportDiagramMissingFile(t *testing.T) {
	if _, err := ImportDiagram(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("CEO > [CTO]"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if text != "CEO > [CTO]" {
		t.Errorf("text = %q", text)
	}

	if _, err := ReadSource(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteArtifactCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "diagram.svg")

	if err := WriteArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteArtifact failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content = %q", data)
	}
}
