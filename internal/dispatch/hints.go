package dispatch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/scaffold"
)

// hint explains a missing script using the project record, if there is one.
func (d *Dispatcher) hint(script string) string {
	rec, err := d.loadRecord()
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("no project found at %s; run `%s init` to create one", d.root, branding.CLIName())
	}
	if err != nil {
		return ""
	}

	switch script {
	case scaffold.ScriptBuildTests, scaffold.ScriptRunTests:
		if rec.Tests == string(project.TestsNone) {
			return fmt.Sprintf("tests were not enabled when this project was created (use --tests %s)", project.TestsGTest)
		}
	case scaffold.ScriptBuildDocs:
		if rec.Docs == string(project.DocsNone) {
			return fmt.Sprintf("docs were not enabled when this project was created (use --docs %s)", project.DocsDoxygen)
		}
	}
	return fmt.Sprintf("`%s` was generated at init and has since been removed", script)
}
