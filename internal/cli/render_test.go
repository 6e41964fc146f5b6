package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "graphs/org.txt", "graphs/org"},
		{"stdin input", "", "-", "diagram"},
		{"empty input", "", "", "diagram"},
		{"explicit output", "out/chart", "org.txt", "out/chart"},
		{"output with format extension", "chart.svg", "org.txt", "chart"},
		{"output with unrelated extension", "chart.final", "org.txt", "chart.final"},
		{"stdout output", "-", "org.txt", "org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"svg", "org.svg"},
		{"dot", "org.dot"},
		{"png", "org.png"},
		{"json", "org.json"},
		// Graphviz output is SVG too, so it gets a qualifier.
		{"graphviz", "org_graphviz.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := artifactPath("org", tt.format); got != tt.want {
				t.Errorf("artifactPath(%q, %q) = %q, want %q", "org", tt.format, got, tt.want)
			}
		})
	}
}

func TestRenderCommandWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "org.txt")
	if err := os.WriteFile(input, []byte("CEO > [CTO, CFO]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "org.svg")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "render", input, "-o", output})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output should contain an <svg> element")
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "org.txt")
	if err := os.WriteFile(input, []byte("CEO > [CTO, CFO]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "render", input, "-f", "svg,dot", "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "org.svg"), filepath.Join(dir, "org.dot")} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected artifact %s: %v", path, err)
		}
	}
}

func TestRenderCommandRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "org.txt")
	if err := os.WriteFile(input, []byte("CEO > [CTO]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfg, "render", input, "-f", "pdf"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("unknown format should fail")
	}
}
