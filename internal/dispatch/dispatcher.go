package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/streamline-dev/streamline/internal/manifest"
	"github.com/streamline-dev/streamline/internal/platform"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/report"
	"github.com/streamline-dev/streamline/internal/runtime"
	"github.com/streamline-dev/streamline/internal/version"
)

// DefaultShell runs the generated scripts.
const DefaultShell = "sh"

// Dispatcher maps user commands onto the generated scripts of one project.
// Every path it touches is resolved against Root.
type Dispatcher struct {
	root        project.Root
	runner      runtime.Runner
	reporter    report.Reporter
	shell       string
	viewer      string
	open        func(viewer, path string) error
	stdout      io.Writer
	stderr      io.Writer
	toolVersion string

	record    *manifest.Record
	recordErr error
	loaded    bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRunner sets the process runner. Defaults to runtime.ExecRunner.
func WithRunner(r runtime.Runner) Option {
	return func(d *Dispatcher) { d.runner = r }
}

// WithReporter sets the reporter. Defaults to report.Discard.
func WithReporter(r report.Reporter) Option {
	return func(d *Dispatcher) { d.reporter = r }
}

// WithShell sets the interpreter the scripts run under.
func WithShell(shell string) Option {
	return func(d *Dispatcher) {
		if shell != "" {
			d.shell = shell
		}
	}
}

// WithViewer sets the command docs --open uses; empty picks the platform default.
func WithViewer(viewer string) Option {
	return func(d *Dispatcher) { d.viewer = viewer }
}

// WithOpener replaces the function that opens the docs entry page.
func WithOpener(open func(viewer, path string) error) Option {
	return func(d *Dispatcher) { d.open = open }
}

// WithOutput sets where external process output is streamed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdout = stdout
		d.stderr = stderr
	}
}

// WithToolVersion sets the running tool's version, used to stamp new
// projects and to flag projects created by a newer release.
func WithToolVersion(v string) Option {
	return func(d *Dispatcher) { d.toolVersion = v }
}

// New returns a Dispatcher for root.
func New(root project.Root, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		root:     root,
		runner:   runtime.ExecRunner{},
		reporter: report.Discard,
		shell:    DefaultShell,
		open:     platform.Open,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the project root the dispatcher works against.
func (d *Dispatcher) Root() project.Root { return d.root }

// scriptPath returns the absolute path of a slash-separated script path.
func (d *Dispatcher) scriptPath(script string) string {
	return d.root.Join(filepath.FromSlash(script))
}

func (d *Dispatcher) scriptExists(script string) bool {
	info, err := os.Stat(d.scriptPath(script))
	return err == nil && !info.IsDir()
}

// invoke checks that script exists, then runs it under the shell. Missing
// scripts spawn nothing.
func (d *Dispatcher) invoke(ctx context.Context, cmd Command, script string, args ...string) Result {
	if !d.scriptExists(script) {
		report.Errorf(d.reporter, "could not find `%s` in `./%s`", path.Base(script), script)
		if hint := d.hint(script); hint != "" {
			d.reporter.Info(hint)
		}
		return Result{Command: cmd, Status: StatusPreconditionMissing, Script: script}
	}

	report.Debug("invoking script", "script", script, "shell", d.shell, "root", d.root.Path())
	out, err := d.runner.Run(ctx, runtime.Invocation{
		Name:   d.shell,
		Args:   append([]string{d.scriptPath(script)}, args...),
		Dir:    d.root.Path(),
		Stdout: d.stdout,
		Stderr: d.stderr,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// Interrupted by the user, not a failure to report.
			report.Debug("script interrupted", "script", script, "err", err)
			return Result{Command: cmd, Status: StatusExternalFailure, Script: script, Err: ctxErr}
		}
		if errors.Is(err, runtime.ErrNotInvocable) {
			report.Errorf(d.reporter, "could not run `%s` with `%s`: %v", script, d.shell, err)
		} else {
			report.Errorf(d.reporter, "running `%s`: %v", script, err)
		}
		return Result{Command: cmd, Status: StatusExternalFailure, Script: script, Err: err}
	}

	if out.ExitCode != 0 {
		report.Debug("script exited non-zero", "script", script, "code", out.ExitCode)
	}
	return Result{Command: cmd, Status: StatusSuccess, Script: script, ExitCode: out.ExitCode}
}

// loadRecord reads the project record once. The record only adds hints;
// its absence never blocks a command.
func (d *Dispatcher) loadRecord() (*manifest.Record, error) {
	if !d.loaded {
		d.loaded = true
		d.record, d.recordErr = manifest.Load(d.root)
		if d.recordErr != nil {
			report.Debug("no usable project record", "err", d.recordErr)
		}
	}
	return d.record, d.recordErr
}

// checkRecord warns when the project was created by a newer tool release.
func (d *Dispatcher) checkRecord() {
	rec, err := d.loadRecord()
	if err != nil || rec.ToolVersion == "" || d.toolVersion == "" {
		return
	}
	if version.IsNewer(rec.ToolVersion, d.toolVersion) {
		d.reporter.Warn(fmt.Sprintf("project was created by %s, newer than the running %s", rec.ToolVersion, d.toolVersion))
	}
}
