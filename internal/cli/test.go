package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Build and run the unit tests",
	Long: `Build the test suite under tests/ and run it. Fails with a distinct exit
code when tests/ contains no test sources yet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd)
		if err != nil {
			return err
		}
		return resultError(d.Test(cmd.Context()))
	},
}
