package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/streamline-dev/streamline/internal/report"
	"github.com/streamline-dev/streamline/internal/scaffold"
)

// Mode selects a build configuration.
type Mode int

const (
	Debug Mode = iota
	Release
)

func (m Mode) String() string {
	if m == Release {
		return "release"
	}
	return "debug"
}

func (m Mode) script() string {
	if m == Release {
		return scaffold.ScriptBuildRelease
	}
	return scaffold.ScriptBuildDebug
}

// Build runs the build script for mode. The build tool's exit code does not
// change the status.
func (d *Dispatcher) Build(ctx context.Context, mode Mode) Result {
	d.checkRecord()
	return d.build(ctx, CommandBuild, mode)
}

func (d *Dispatcher) build(ctx context.Context, cmd Command, mode Mode) Result {
	res := d.invoke(ctx, cmd, mode.script())
	if res.OK() {
		d.reporter.Success(fmt.Sprintf("finished %s build", mode))
	}
	return res
}

// Run rebuilds the debug configuration, then runs it with args. Nothing is
// run unless the debug build script was found and started.
func (d *Dispatcher) Run(ctx context.Context, args ...string) Result {
	d.checkRecord()
	res := d.build(ctx, CommandRun, Debug)
	if !res.OK() {
		return res
	}

	// Separate the build output from the program's.
	fmt.Fprintln(d.stdout)

	return d.invoke(ctx, CommandRun, scaffold.ScriptRun, args...)
}

// Test builds and runs the test suite. A tests directory without test
// sources yields StatusNoTests before any script is looked up.
func (d *Dispatcher) Test(ctx context.Context) Result {
	d.checkRecord()
	ok, err := d.hasTestSources()
	if err != nil {
		report.Errorf(d.reporter, "reading `./%s`: %v", scaffold.TestsDir, err)
		return Result{Command: CommandTest, Status: StatusIOError, Err: err}
	}
	if !ok {
		report.Errorf(d.reporter, "no tests found in `./%s`", scaffold.TestsDir)
		if hint := d.hint(scaffold.ScriptBuildTests); hint != "" {
			d.reporter.Info(hint)
		}
		return Result{Command: CommandTest, Status: StatusNoTests}
	}

	res := d.invoke(ctx, CommandTest, scaffold.ScriptBuildTests)
	if !res.OK() {
		return res
	}
	d.reporter.Success("finished building tests")

	res = d.invoke(ctx, CommandTest, scaffold.ScriptRunTests)
	if res.OK() {
		d.reporter.Success("finished running tests")
	}
	return res
}

// hasTestSources reports whether tests/ holds anything besides its own
// build descriptor. A missing directory holds nothing.
func (d *Dispatcher) hasTestSources() (bool, error) {
	entries, err := os.ReadDir(d.root.Join(scaffold.TestsDir))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	descriptor := filepath.Base(scaffold.TestsBuildFile)
	for _, e := range entries {
		if e.Name() != descriptor {
			return true, nil
		}
	}
	return false, nil
}

// Docs runs the docs script and, when open is set, opens the entry page.
// A failure to open the page is reported as a warning only.
func (d *Dispatcher) Docs(ctx context.Context, open bool) Result {
	d.checkRecord()
	res := d.invoke(ctx, CommandDocs, scaffold.ScriptBuildDocs)
	if !res.OK() {
		return res
	}
	d.reporter.Success("finished building docs")

	if !open {
		return res
	}
	page := d.root.Join(filepath.FromSlash(scaffold.DocsEntryPage))
	if _, err := os.Stat(page); err != nil {
		d.reporter.Warn(fmt.Sprintf("could not find `%s`; was the documentation generated?", scaffold.DocsEntryPage))
		return res
	}
	report.Debug("opening docs", "page", page, "viewer", d.viewer)
	if err := d.open(d.viewer, page); err != nil {
		d.reporter.Warn(err.Error())
		return res
	}
	d.reporter.Info(fmt.Sprintf("opened `%s`", scaffold.DocsEntryPage))
	return res
}
