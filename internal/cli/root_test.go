package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
)

// writeTestConfig writes a config file that keeps cache and store
// state inside dir, and returns its path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(
		"[cache]\nbackend = \"file\"\ndir = %q\n\n[store]\nbackend = \"file\"\ndir = %q\n",
		filepath.Join(dir, "cache"), filepath.Join(dir, "store"))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{
		"render", "parse", "layout", "export", "serve",
		"shapes", "store", "cache", "browse", "completion",
	}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			for _, cmd := range root.Commands() {
				if cmd.Name() == name {
					return
				}
			}
			t.Errorf("root command should register %q", name)
		})
	}
}

func TestRootCommandSilencesUsage(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	if !root.SilenceUsage {
		t.Error("runtime errors should not print usage")
	}
}

func TestApplyConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Engine.Algorithm = "grid"
	c.Config.Engine.SpacingX = 80
	c.Config.Render.Background = "#f8f8f8"

	opts := pipeline.Options{Algorithm: "tree"}
	c.applyConfig(&opts)

	if opts.Algorithm != "tree" {
		t.Errorf("flag value should win over config, got %q", opts.Algorithm)
	}
	if opts.SpacingX != 80 {
		t.Errorf("config should fill unset spacing, got %v", opts.SpacingX)
	}
	if opts.Background != "#f8f8f8" {
		t.Errorf("config should fill unset background, got %q", opts.Background)
	}
	if opts.Direction != "" {
		t.Errorf("fields unset in both places should stay zero, got %q", opts.Direction)
	}
}
