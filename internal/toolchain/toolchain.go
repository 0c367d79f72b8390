package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/streamline-dev/streamline/internal/manifest"
	"github.com/streamline-dev/streamline/internal/platform"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/runtime"
	"github.com/streamline-dev/streamline/internal/scaffold"
	"github.com/streamline-dev/streamline/internal/version"
)

// Minimum cmake releases. FetchContent_MakeAvailable needs 3.14; newer
// editions need a cmake that knows their CXX_STANDARD value.
const (
	MinCMake          = "3.14"
	MinCMakeEdition23 = "3.20"
	MinCMakeEdition26 = "3.25"
)

// MinCMakeFor returns the minimum cmake release for edition.
func MinCMakeFor(edition project.Edition) string {
	switch edition {
	case project.Edition23:
		return MinCMakeEdition23
	case project.Edition26:
		return MinCMakeEdition26
	default:
		return MinCMake
	}
}

// Status is the outcome of one check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusMiss
	StatusFail
)

// Tag returns the bracketed marker printed before a check.
func (s Status) Tag() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusWarn:
		return "[WARN]"
	case StatusMiss:
		return "[MISS]"
	default:
		return "[FAIL]"
	}
}

// Check is one line of a doctor report.
type Check struct {
	Section string
	Status  Status
	Message string
	Details []string
}

// Report collects every check in order.
type Report struct {
	Checks []Check
}

func (r *Report) add(section string, status Status, format string, args ...any) *Check {
	r.Checks = append(r.Checks, Check{Section: section, Status: status, Message: fmt.Sprintf(format, args...)})
	return &r.Checks[len(r.Checks)-1]
}

// Healthy reports whether no check missed or failed. Warnings are allowed.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == StatusMiss || c.Status == StatusFail {
			return false
		}
	}
	return true
}

// Write prints the report grouped by section.
func (r *Report) Write(w io.Writer) {
	section := ""
	for _, c := range r.Checks {
		if c.Section != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			section = c.Section
			fmt.Fprintf(w, "%s check:\n", section)
		}
		fmt.Fprintf(w, "  %s %s\n", c.Status.Tag(), c.Message)
		for _, d := range c.Details {
			fmt.Fprintf(w, "    - %s\n", d)
		}
	}
}

// Doctor inspects a project and the external tools it needs.
type Doctor struct {
	Root   project.Root
	Shell  string
	Runner runtime.Runner
	// LookPath resolves executables. Defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run performs every check. When the project record is missing or invalid
// the tool checks assume no optional features.
func (d *Doctor) Run(ctx context.Context) *Report {
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	runner := d.Runner
	if runner == nil {
		runner = runtime.ExecRunner{}
	}

	r := &Report{}
	cfg, ok := d.checkRecord(r)
	if ok {
		d.checkScripts(r, cfg)
	}

	shell := d.Shell
	if shell == "" {
		shell = "sh"
	}
	d.checkTool(ctx, r, runner, lookPath, shell, "")
	d.checkTool(ctx, r, runner, lookPath, "cmake", MinCMakeFor(cfg.Edition))
	if cfg.HasTests() {
		d.checkTool(ctx, r, runner, lookPath, "ctest", MinCMake)
	}
	if cfg.HasDocs() {
		d.checkTool(ctx, r, runner, lookPath, "doxygen", "")
	}
	return r
}

func (d *Doctor) checkRecord(r *Report) (project.Config, bool) {
	const section = "Project"
	path := d.Root.Join(project.RecordFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.add(section, StatusMiss, "no project record at %s", project.RecordFile)
		return project.Config{}, false
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		r.add(section, StatusFail, "cannot read %s: %v", project.RecordFile, err)
		return project.Config{}, false
	}
	if !result.Valid {
		c := r.add(section, StatusFail, "%s has %d validation issue(s)", project.RecordFile, len(result.Issues))
		for _, issue := range result.Issues {
			c.Details = append(c.Details, issue.String())
		}
		return project.Config{}, false
	}

	rec, err := manifest.Load(d.Root)
	if err != nil {
		r.add(section, StatusFail, "cannot parse %s: %v", project.RecordFile, err)
		return project.Config{}, false
	}
	cfg, err := rec.Config()
	if err != nil {
		r.add(section, StatusFail, "%s: %v", project.RecordFile, err)
		return project.Config{}, false
	}
	r.add(section, StatusOK, "%s (C++%s, docs: %s, tests: %s)", cfg.Name, cfg.Edition, cfg.Docs, cfg.Tests)
	return cfg, true
}

func (d *Doctor) checkScripts(r *Report, cfg project.Config) {
	const section = "Scripts"
	for _, script := range scaffold.Layout(cfg).Scripts() {
		ok, err := platform.IsExecutable(d.Root.Join(filepath.FromSlash(script)))
		switch {
		case err != nil:
			r.add(section, StatusMiss, "%s", script)
		case !ok:
			r.add(section, StatusWarn, "%s is not executable (it still runs through the shell)", script)
		default:
			r.add(section, StatusOK, "%s", script)
		}
	}
}

func (d *Doctor) checkTool(ctx context.Context, r *Report, runner runtime.Runner, lookPath func(string) (string, error), name, min string) {
	const section = "Toolchain"
	path, err := lookPath(name)
	if err != nil {
		r.add(section, StatusMiss, "%s not found", name)
		return
	}
	if min == "" {
		r.add(section, StatusOK, "%s found at %s", name, path)
		return
	}

	out, err := runner.Run(ctx, runtime.Invocation{
		Name:   name,
		Args:   []string{"--version"},
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	if err != nil {
		r.add(section, StatusWarn, "%s found at %s but its version could not be read: %v", name, path, err)
		return
	}
	have := version.Extract(out.Stdout)
	if have == "" {
		r.add(section, StatusWarn, "%s found at %s but reported no version", name, path)
		return
	}
	ok, err := version.AtLeast(have, min)
	if err != nil {
		r.add(section, StatusWarn, "%s %s: %v", name, have, err)
		return
	}
	if !ok {
		r.add(section, StatusFail, "%s %s is older than the required %s", name, have, min)
		return
	}
	r.add(section, StatusOK, "%s %s found at %s", name, have, path)
}
