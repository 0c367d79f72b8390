package runtime

import (
	"context"
	"errors"
	"io"
)

// ErrNotInvocable is wrapped by every error that means the executable could
// not be started at all (missing from PATH, not executable).
var ErrNotInvocable = errors.New("executable not invocable")

// Invocation describes one external process to run.
type Invocation struct {
	Name string // executable, looked up on PATH unless it contains a separator
	Args []string
	Dir  string // working directory; empty means the caller's
	Env  []string

	// Nil streams default to the process's own stdin/stdout/stderr.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Output is the result of a process that was started.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs external processes and blocks until they exit. A non-zero exit
// code is reported in Output, not as an error; errors are reserved for
// processes that could not be run.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Output, error)
}
