package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/scaffold"
)

// InitRequest holds the raw init options. Docs and Tests are already
// parsed at the argument boundary.
type InitRequest struct {
	Name    string
	Edition string
	Docs    project.DocsGenerator
	Tests   project.TestFramework
	// DryRun reports the plan without writing anything.
	DryRun bool
}

// Init validates req, plans the scaffold and writes it at the dispatcher's
// root. It stops at the first failure; a failed write is not rolled back.
func (d *Dispatcher) Init(ctx context.Context, req InitRequest) Result {
	if err := ctx.Err(); err != nil {
		return Result{Command: CommandInit, Status: StatusIOError, Err: err}
	}

	cfg, err := project.Validate(req.Name, req.Edition, req.Docs, req.Tests, d.root.Path())
	if err != nil {
		d.reporter.Error(err.Error())
		if errors.Is(err, project.ErrValidation) {
			return Result{Command: CommandInit, Status: StatusInvalid, Err: err}
		}
		return Result{Command: CommandInit, Status: StatusIOError, Err: err}
	}

	plan, err := scaffold.NewPlan(cfg, scaffold.WithToolVersion(d.toolVersion))
	if err != nil {
		d.reporter.Error(err.Error())
		return Result{Command: CommandInit, Status: StatusIOError, Err: err}
	}

	if req.DryRun {
		for _, p := range plan.Paths() {
			d.reporter.Info(fmt.Sprintf("would create %s", p))
		}
		return Result{Command: CommandInit, Status: StatusSuccess}
	}

	if _, err := scaffold.Write(d.root.Path(), plan); err != nil {
		d.reporter.Error(err.Error())
		var we *scaffold.WriteError
		if errors.As(err, &we) {
			d.reporter.Info(fmt.Sprintf("%s is partially populated; remove it before running init again", d.root))
			return Result{Command: CommandInit, Status: StatusIOError, Err: err}
		}
		if errors.Is(err, project.ErrValidation) {
			return Result{Command: CommandInit, Status: StatusInvalid, Err: err}
		}
		return Result{Command: CommandInit, Status: StatusIOError, Err: err}
	}

	d.record, d.recordErr, d.loaded = nil, nil, false
	d.reporter.Success("created new project")
	return Result{Command: CommandInit, Status: StatusSuccess}
}
