package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ViewerCommand returns the command that opens path. A non-empty viewer is
// split on whitespace and used as-is with path appended; otherwise the
// platform's default opener is chosen.
func ViewerCommand(viewer, path string) (string, []string, error) {
	if fields := strings.Fields(viewer); len(fields) > 0 {
		return fields[0], append(fields[1:], path), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("cannot open files on %s; set a viewer", runtime.GOOS)
	}
}

// Open starts the viewer for path without waiting for it to exit.
func Open(viewer, path string) error {
	name, args, err := ViewerCommand(viewer, path)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("opening %s with %s: %w", path, name, err)
	}
	return nil
}
