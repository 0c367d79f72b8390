package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/streamline-dev/streamline/internal/config"
	"github.com/streamline-dev/streamline/internal/dispatch"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/prompt"
)

var (
	initName    string
	initEdition string
	initDocs    string
	initTests   string
	initDryRun  bool
	initPrompt  bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: the directory name)")
	initCmd.Flags().StringVar(&initEdition, "edition", "", "C++ edition: 98, 11, 14, 17, 20, 23 or 26 (default from config, else 17)")
	initCmd.Flags().StringVar(&initDocs, "docs", "", "Documentation generator: none or doxygen")
	initCmd.Flags().StringVar(&initTests, "tests", "", "Test framework: none or gtest")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Show the files that would be created without writing them")
	initCmd.Flags().BoolVarP(&initPrompt, "interactive", "i", false, "Choose the options from menus; flags become the defaults")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new project in an empty directory",
	Long: `Create a new C++ project in the project directory, which must be empty
or not exist yet. The layout always contains src/, external/, data/ and
tools/; --tests gtest adds tests/ and --docs doxygen adds a Doxyfile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := project.NewRoot(projectDir)
		if err != nil {
			return err
		}

		docs, err := project.ParseDocsGenerator(orConfig(initDocs, config.KeyDocs))
		if err != nil {
			return &ExitError{Err: err, Code: ExitValidationError}
		}
		tests, err := project.ParseTestFramework(orConfig(initTests, config.KeyTests))
		if err != nil {
			return &ExitError{Err: err, Code: ExitValidationError}
		}

		answers := prompt.Answers{
			Name:    initName,
			Edition: orConfig(initEdition, config.KeyEdition),
			Docs:    docs,
			Tests:   tests,
		}
		if answers.Name == "" {
			answers.Name = filepath.Base(root.Path())
		}
		if initPrompt {
			chosen, err := prompt.RunInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), answers)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			answers = *chosen
		}

		res := dispatcherAt(cmd, root).Init(cmd.Context(), dispatch.InitRequest{
			Name:    answers.Name,
			Edition: answers.Edition,
			Docs:    answers.Docs,
			Tests:   answers.Tests,
			DryRun:  initDryRun,
		})
		return resultError(res)
	},
}

// orConfig returns flag when set, otherwise the configured value for key.
func orConfig(flag, key string) string {
	if flag != "" {
		return flag
	}
	return config.Get(key)
}
