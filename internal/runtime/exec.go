package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs processes with os/exec, streaming their output to the
// invocation's writers while also capturing it.
type ExecRunner struct{}

// Run starts inv and waits for it to exit. A process killed because ctx
// ended reports ctx's error rather than an exit code.
func (ExecRunner) Run(ctx context.Context, inv Invocation) (*Output, error) {
	bin, err := exec.LookPath(inv.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotInvocable, inv.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, inv.Args...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	stdin := inv.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := inv.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := inv.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("%s interrupted: %w", inv.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("%w: %s: %v", ErrNotInvocable, inv.Name, err)
	}

	return output, nil
}
