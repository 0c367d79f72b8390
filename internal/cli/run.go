package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [-- args...]",
	Short: "Build the debug configuration and run it",
	Long: `Build the debug configuration, then run the resulting program.
Arguments after -- are passed to the program.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd)
		if err != nil {
			return err
		}
		return resultError(d.Run(cmd.Context(), args...))
	},
}
