package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/streamline-dev/streamline/internal/config"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project and the tools it needs",
	Long: `Run diagnostic checks: the project record is valid, every generated script
is in place, and the shell, cmake, ctest and doxygen the project needs are
installed at a supported version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := project.FindRoot(projectDir)
		if err != nil {
			return err
		}

		doc := &toolchain.Doctor{Root: root, Shell: config.Get(config.KeyShell)}
		report := doc.Run(cmd.Context())
		report.Write(cmd.OutOrStdout())

		if !report.Healthy() {
			return &ExitError{Err: errors.New("doctor found problems"), Code: ExitGeneralError}
		}
		return nil
	},
}
