package platform

import (
	"fmt"
	"os"
	"runtime"
)

// ExecMode is the mode given to generated scripts.
const ExecMode os.FileMode = 0755

// SetMode applies mode to path regardless of the process umask. Windows has
// no Unix permission bits, so it is a no-op there.
func SetMode(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if err := os.Chmod(path, mode.Perm()); err != nil {
		return fmt.Errorf("setting mode %o on %s: %w", mode.Perm(), path, err)
	}
	return nil
}

// IsExecutable reports whether the owner may execute the regular file at
// path. It is always true on Windows.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	if runtime.GOOS == "windows" {
		return true, nil
	}
	return info.Mode().Perm()&0100 != 0, nil
}
