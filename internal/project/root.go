package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/streamline-dev/streamline/internal/branding"
)

// RecordFile is the project record written at init, relative to the root.
var RecordFile = filepath.Join(branding.HomeDir(), "project.yaml")

// ToolsDir holds the generated scripts.
const ToolsDir = "tools"

// Root is an absolute project root. Every path the dispatcher touches is
// computed from it instead of from the process working directory.
type Root struct {
	path string
}

// NewRoot resolves dir to an absolute path without searching parents.
func NewRoot(dir string) (Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Root{}, fmt.Errorf("resolving project root %s: %w", dir, err)
	}
	return Root{path: abs}, nil
}

// FindRoot resolves start and walks up to the nearest directory holding a
// project record or a tools/ directory. When none is found the resolved
// start directory is returned, so precondition checks report against it.
func FindRoot(start string) (Root, error) {
	r, err := NewRoot(start)
	if err != nil {
		return Root{}, err
	}
	for dir := r.path; ; {
		if isFile(filepath.Join(dir, RecordFile)) || isDir(filepath.Join(dir, ToolsDir)) {
			return Root{path: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return r, nil
		}
		dir = parent
	}
}

// Path returns the absolute root directory.
func (r Root) Path() string { return r.path }

// Join returns rel resolved against the root.
func (r Root) Join(rel ...string) string {
	return filepath.Join(append([]string{r.path}, rel...)...)
}

// Exists reports whether rel exists under the root.
func (r Root) Exists(rel string) bool {
	_, err := os.Stat(r.Join(rel))
	return err == nil
}

func (r Root) String() string { return r.path }

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
