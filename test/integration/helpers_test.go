//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/streamline-dev/streamline/internal/project"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // STREAMLINE_HOME, holds config.yaml
	ProjectDir string // where init scaffolds
}

// setupTestEnv creates isolated temp directories and points STREAMLINE_HOME
// at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "demo"),
	}
	t.Setenv("STREAMLINE_HOME", env.HomeDir)
	return env
}

// requireTools skips the test unless every named executable is on PATH.
func requireTools(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available, skipping", name)
		}
	}
}

func root(t *testing.T, dir string) project.Root {
	t.Helper()
	r, err := project.NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("output does not contain %q\n--- output ---\n%s", substr, content)
	}
}
