package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/streamline-dev/streamline/internal/dispatch"
)

var (
	buildDebug   bool
	buildRelease bool
	buildWatch   bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildDebug, "debug", false, "Build the debug configuration (default)")
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "Build the release configuration")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "Rebuild when files under src/ change")
	buildCmd.MarkFlagsMutuallyExclusive("debug", "release")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project with the generated build script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd)
		if err != nil {
			return err
		}

		mode := dispatch.Debug
		if buildRelease {
			mode = dispatch.Release
		}

		if !buildWatch {
			return resultError(d.Build(cmd.Context(), mode))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return resultError(d.Watch(ctx, mode, dispatch.DefaultDebounce))
	},
}
