package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/manifest"
	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/version"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version string       `json:"version"`
	Commit  string       `json:"commit"`
	Date    string       `json:"date"`
	Project *projectInfo `json:"project,omitempty"`
}

// projectInfo describes the project under --project-dir, when there is one.
type projectInfo struct {
	Name        string `json:"name"`
	Root        string `json:"root"`
	ToolVersion string `json:"tool_version,omitempty"`
	Newer       bool   `json:"newer_than_tool"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version of ` + branding.CLIName() + `. Inside a project, also print the
version that generated it, as recorded in ` + project.RecordFile + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{
			Version: buildVersion,
			Commit:  buildCommit,
			Date:    buildDate,
			Project: currentProject(),
		}

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		if p := info.Project; p != nil {
			generated := p.ToolVersion
			if generated == "" {
				generated = "an unknown version"
			}
			fmt.Fprintf(out, "project %s at %s generated by %s\n", p.Name, p.Root, generated)
			if p.Newer {
				fmt.Fprintf(out, "the project was generated by a newer %s; consider upgrading\n", branding.CLIName())
			}
		}
		return nil
	},
}

// currentProject returns nil when no readable project record is found.
func currentProject() *projectInfo {
	root, err := project.FindRoot(projectDir)
	if err != nil {
		return nil
	}
	rec, err := manifest.Load(root)
	if err != nil {
		return nil
	}
	return &projectInfo{
		Name:        rec.Name,
		Root:        root.Path(),
		ToolVersion: rec.ToolVersion,
		Newer:       rec.ToolVersion != "" && version.IsNewer(rec.ToolVersion, buildVersion),
	}
}
