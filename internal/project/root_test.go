package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ToolsDir), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "detail")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	gotPath, _ := filepath.EvalSymlinks(got.Path())
	if gotPath != want {
		t.Errorf("FindRoot() = %q, want %q", gotPath, want)
	}
}

func TestFindRootFallsBackToStart(t *testing.T) {
	start := t.TempDir()
	got, err := FindRoot(start)
	if err != nil {
		t.Fatal(err)
	}
	// TempDir parents normally contain no tools/ dir; if the host has one
	// above the temp dir, the walk legitimately stops there.
	if got.Path() != start && !isDir(filepath.Join(got.Path(), ToolsDir)) {
		t.Errorf("FindRoot() = %q, want %q", got.Path(), start)
	}
}

func TestRootJoinAndExists(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Join("tools", "run.sh"); got != filepath.Join(dir, "tools", "run.sh") {
		t.Errorf("Join() = %q", got)
	}
	if r.Exists("tools") {
		t.Error("tools should not exist yet")
	}
	if err := os.Mkdir(r.Join("tools"), 0755); err != nil {
		t.Fatal(err)
	}
	if !r.Exists("tools") {
		t.Error("tools should exist")
	}
}
