package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

func TestStoreSaveAndDeleteCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "org.txt")
	if err := os.WriteFile(input, []byte("CEO > [CTO, CFO]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "store", "save", input, "--name", "org chart"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("store save: %v", err)
	}

	// Inspect the backing store directly to pick up the generated ID.
	st, err := store.NewFileStore(filepath.Join(dir, "store"))
	if err != nil {
		t.Fatal(err)
	}
	recs, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Name != "org chart" {
		t.Errorf("name = %q, want %q", rec.Name, "org chart")
	}
	if rec.Diagram == nil || len(rec.Diagram.Nodes) != 3 {
		t.Error("record should carry the parsed three-node snapshot")
	}
	st.Close()

	root = New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "store", "delete", rec.ID})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("store delete: %v", err)
	}

	st, err = store.NewFileStore(filepath.Join(dir, "store"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if _, err := st.Get(context.Background(), rec.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStoreSaveCommandRequiresName(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "org.txt")
	if err := os.WriteFile(input, []byte("CEO > CTO\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfg, "store", "save", input})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("save without --name should fail")
	}
}

func TestStoreShowCommandWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	input := filepath.Join(dir, "flow.txt")
	if err := os.WriteFile(input, []byte("a -> b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "store", "save", input, "--name", "flow"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("store save: %v", err)
	}

	st, err := store.NewFileStore(filepath.Join(dir, "store"))
	if err != nil {
		t.Fatal(err)
	}
	recs, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	st.Close()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	snapshot := filepath.Join(dir, "snapshot.json")
	root = New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "store", "show", recs[0].ID, "-o", snapshot})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("store show: %v", err)
	}

	if _, err := os.Stat(snapshot); err != nil {
		t.Errorf("expected snapshot file: %v", err)
	}
}

func TestStoreDeleteCommandUnknownID(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfg, "store", "delete", "no-such-id"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("deleting an unknown ID should fail")
	}
}
