package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/config"
	"github.com/streamline-dev/streamline/internal/dispatch"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/report"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectDir string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "C", ".", "Project directory (searched upwards for an existing project)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates C++ projects with a fixed layout and generated build,
run, test and documentation scripts, then drives those scripts for you.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		report.SetupLogging(verbose)
		if err := config.Load(); err != nil {
			return err
		}
		report.Debug("loaded config", "file", config.FilePath())
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors not yet shown to the user are printed before returning.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	reportUnhandled(report.NewStdConsole(), err)
	return err
}

// reportUnhandled shows err unless a command already reported it.
func reportUnhandled(r report.Reporter, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		r.Error(err.Error())
	}
}

func newReporter(cmd *cobra.Command) report.Reporter {
	return report.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// newDispatcher builds a dispatcher for the project containing --project-dir.
func newDispatcher(cmd *cobra.Command) (*dispatch.Dispatcher, error) {
	root, err := project.FindRoot(projectDir)
	if err != nil {
		return nil, err
	}
	report.Debug("resolved project root", "root", root.Path())
	return dispatcherAt(cmd, root), nil
}

func dispatcherAt(cmd *cobra.Command, root project.Root) *dispatch.Dispatcher {
	return dispatch.New(root,
		dispatch.WithReporter(newReporter(cmd)),
		dispatch.WithShell(config.Get(config.KeyShell)),
		dispatch.WithViewer(config.Get(config.KeyViewer)),
		dispatch.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		dispatch.WithToolVersion(buildVersion),
	)
}
