package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/streamline-dev/streamline/internal/project"
)

// walkTree lists every entry under root as slash-separated relative paths.
func walkTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(paths)
	return paths
}

func TestWriteFullProject(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "demo")
	cfg, err := project.Validate("demo", "20", project.DocsDoxygen, project.TestsGTest, dest)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	plan, err := NewPlan(cfg)
	if err != nil {
		t.Fatal(err)
	}

	result, err := Write(dest, plan)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if len(result.Files) != len(plan.Files) {
		t.Errorf("wrote %d files, planned %d", len(result.Files), len(plan.Files))
	}

	want := []string{
		".gitignore",
		".streamline",
		".streamline/project.yaml",
		"data",
		"external",
		"src",
		"src/CMakeLists.txt",
		"src/main.cpp",
		"tests",
		"tests/CMakeLists.txt",
		"tools",
		"tools/Doxyfile",
		"tools/build_debug.sh",
		"tools/build_docs.sh",
		"tools/build_release.sh",
		"tools/build_tests.sh",
		"tools/run.sh",
		"tools/run_tests.sh",
	}
	got := walkTree(t, dest)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("tree mismatch\n got: %v\nwant: %v", got, want)
	}

	cmake, err := os.ReadFile(filepath.Join(dest, "src", "CMakeLists.txt"))
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(cmake), "project(demo ")
	assertContains(t, string(cmake), "CXX_STANDARD 20\n")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dest, "tools", "run.sh"))
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("run.sh permissions = %o, want 755", perm)
		}
		info, err = os.Stat(filepath.Join(dest, "src", "main.cpp"))
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0644 {
			t.Errorf("main.cpp permissions = %o, want 644", perm)
		}
	}
}

func TestWriteIntoExistingEmptyDir(t *testing.T) {
	dest := t.TempDir()
	plan, err := NewPlan(mustConfig(t, "demo", "17", project.DocsNone, project.TestsNone))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Write(dest, plan); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "tests")); !os.IsNotExist(err) {
		t.Error("tests/ should not exist without a test framework")
	}
}

func TestWriteRechecksDestination(t *testing.T) {
	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(dest, "README"), []byte("stray"), 0644); err != nil {
		t.Fatal(err)
	}
	plan, err := NewPlan(mustConfig(t, "demo", "17", project.DocsNone, project.TestsNone))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Write(dest, plan)
	if !project.IsKind(err, project.KindDestinationNotEmpty) {
		t.Fatalf("Write() error = %v, want destination not empty", err)
	}
	if got := walkTree(t, dest); len(got) != 1 {
		t.Errorf("destination modified: %v", got)
	}
}

func TestWriteErrorCarriesPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a regular file blocking a directory")
	}
	dest := t.TempDir()
	plan := &Plan{
		Dirs:  []string{"src"},
		Files: []File{{Path: "src/main.cpp/inner", Content: []byte("x"), Mode: 0644}},
	}
	plan.Files = append([]File{{Path: "src/main.cpp", Content: []byte("x"), Mode: 0644}}, plan.Files...)

	result, err := Write(dest, plan)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Write() error = %v, want *WriteError", err)
	}
	if !strings.Contains(we.Path, "main.cpp") {
		t.Errorf("WriteError.Path = %q", we.Path)
	}
	if len(result.Files) != 1 {
		t.Errorf("files written before failure = %v, want the first one kept", result.Files)
	}
}
