package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/streamline-dev/streamline/internal/platform"
	"github.com/streamline-dev/streamline/internal/project"
)

// WriteError reports the path a scaffold write failed on.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result holds the outcome of a scaffold write.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// Write materializes plan under root. The destination is re-checked for
// emptiness first; a non-empty destination returns the validation error and
// nothing is written.
//
// Writes are not rolled back. Since the destination started out empty, a
// failed write leaves a partially populated tree that the user removes
// before retrying.
func Write(root string, plan *Plan) (*Result, error) {
	if err := project.CheckDestination(root); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", root, err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, &WriteError{Path: abs, Err: err}
	}

	result := &Result{Root: abs}
	for _, dir := range plan.Dirs {
		target := filepath.Join(abs, filepath.FromSlash(dir))
		if err := os.MkdirAll(target, 0755); err != nil {
			return result, &WriteError{Path: target, Err: err}
		}
		result.Dirs = append(result.Dirs, dir)
	}

	for _, f := range plan.Files {
		target := filepath.Join(abs, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return result, &WriteError{Path: target, Err: err}
		}
		if err := os.WriteFile(target, f.Content, f.Mode); err != nil {
			return result, &WriteError{Path: target, Err: err}
		}
		// WriteFile's mode is filtered by the umask.
		if err := platform.SetMode(target, f.Mode); err != nil {
			return result, &WriteError{Path: target, Err: err}
		}
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}
