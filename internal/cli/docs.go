package cli

import (
	"github.com/spf13/cobra"
)

var docsOpen bool

func init() {
	docsCmd.Flags().BoolVar(&docsOpen, "open", false, "Open the generated documentation in a viewer")
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate the documentation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd)
		if err != nil {
			return err
		}
		return resultError(d.Docs(cmd.Context(), docsOpen))
	},
}
