package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommandWritesDOT(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "flow.txt")
	if err := os.WriteFile(input, []byte("start -> finish\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "flow.dot")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "export", input, "-o", output, "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph G {") {
		t.Error("output should open a digraph")
	}
	if !strings.Contains(dot, "->") {
		t.Error("output should contain a directed edge")
	}
}

func TestExportCommandDetailedLabels(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "flow.txt")
	if err := os.WriteFile(input, []byte("start -> finish\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "flow.dot")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "export", input, "-o", output, "--detailed", "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	// Detailed labels carry the node ID and position alongside the
	// display label, e.g. "start\nn1 (60,40)".
	if !strings.Contains(string(data), "n1 (") {
		t.Error("detailed output should include node IDs and positions")
	}
}

func TestExportCommandRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "flow.txt")
	if err := os.WriteFile(input, []byte("a -> b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfg, "export", input, "-f", "pdf"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("unknown export format should fail")
	}
}

func TestExportExt(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"dot", "dot"},
		{"png", "png"},
		{"graphviz", "svg"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := exportExt(tt.format); got != tt.want {
				t.Errorf("exportExt(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
