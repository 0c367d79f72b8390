package scaffold

import (
	"io/fs"
	"path"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/platform"
	"github.com/streamline-dev/streamline/internal/project"
)

// Top-level directories of a generated project.
const (
	SourceDir   = "src"
	TestsDir    = "tests"
	ExternalDir = "external"
	DataDir     = "data"
	ToolsDir    = project.ToolsDir
	BuildDir    = "build"
)

// Well-known generated scripts, relative to the project root. Their presence
// is the precondition for the matching user command.
var (
	ScriptBuildDebug   = path.Join(ToolsDir, "build_debug.sh")
	ScriptBuildRelease = path.Join(ToolsDir, "build_release.sh")
	ScriptRun          = path.Join(ToolsDir, "run.sh")
	ScriptBuildTests   = path.Join(ToolsDir, "build_tests.sh")
	ScriptRunTests     = path.Join(ToolsDir, "run_tests.sh")
	ScriptBuildDocs    = path.Join(ToolsDir, "build_docs.sh")
)

// Other generated files referenced outside the planner.
var (
	EntryPointFile    = path.Join(SourceDir, "main.cpp")
	SourceBuildFile   = path.Join(SourceDir, "CMakeLists.txt")
	TestsBuildFile    = path.Join(TestsDir, "CMakeLists.txt")
	DoxygenConfigFile = path.Join(ToolsDir, "Doxyfile")
	IgnoreFile        = ".gitignore"
	DocsEntryPage     = path.Join(BuildDir, "docs", "html", "index.html")
	ProjectRecordFile = path.Join(branding.HomeDir(), "project.yaml")
)

// GTestArchive is the pinned googletest release fetched by tests/CMakeLists.txt.
const GTestArchive = "https://github.com/google/googletest/archive/refs/tags/v1.14.0.zip"

const (
	executableFileMode fs.FileMode = platform.ExecMode
	regularFileMode    fs.FileMode = 0644
)

// FileSpec names one file of a skeleton and the template that renders it.
type FileSpec struct {
	Path     string // slash-separated, relative to the project root
	Template string // file name under templates/
	Mode     fs.FileMode
}

// Executable reports whether the file is a generated script.
func (f FileSpec) Executable() bool {
	return f.Mode&0111 != 0
}

// Skeleton is the unrendered layout of a project: every directory to create
// and every file to render, in creation order.
type Skeleton struct {
	Dirs  []string
	Files []FileSpec
}

// Layout computes the skeleton for cfg. It never touches the filesystem and
// is the only place that decides which optional files exist.
func Layout(cfg project.Config) Skeleton {
	sk := Skeleton{
		Dirs: []string{SourceDir, ExternalDir, DataDir, ToolsDir, branding.HomeDir()},
		Files: []FileSpec{
			{Path: EntryPointFile, Template: "main.cpp.tmpl", Mode: regularFileMode},
			{Path: SourceBuildFile, Template: "src_CMakeLists.txt.tmpl", Mode: regularFileMode},
			{Path: ScriptBuildDebug, Template: "build_debug.sh.tmpl", Mode: executableFileMode},
			{Path: ScriptBuildRelease, Template: "build_release.sh.tmpl", Mode: executableFileMode},
			{Path: ScriptRun, Template: "run.sh.tmpl", Mode: executableFileMode},
			{Path: IgnoreFile, Template: "gitignore.tmpl", Mode: regularFileMode},
			{Path: ProjectRecordFile, Template: "project.yaml.tmpl", Mode: regularFileMode},
		},
	}

	if cfg.HasTests() {
		sk.Dirs = append(sk.Dirs, TestsDir)
		sk.Files = append(sk.Files,
			FileSpec{Path: TestsBuildFile, Template: "tests_CMakeLists.txt.tmpl", Mode: regularFileMode},
			FileSpec{Path: ScriptBuildTests, Template: "build_tests.sh.tmpl", Mode: executableFileMode},
			FileSpec{Path: ScriptRunTests, Template: "run_tests.sh.tmpl", Mode: executableFileMode},
		)
	}

	if cfg.HasDocs() {
		sk.Files = append(sk.Files,
			FileSpec{Path: DoxygenConfigFile, Template: "Doxyfile.tmpl", Mode: regularFileMode},
			FileSpec{Path: ScriptBuildDocs, Template: "build_docs.sh.tmpl", Mode: executableFileMode},
		)
	}

	return sk
}

// Scripts returns the generated scripts the skeleton contains.
func (sk Skeleton) Scripts() []string {
	var scripts []string
	for _, f := range sk.Files {
		if f.Executable() {
			scripts = append(scripts, f.Path)
		}
	}
	return scripts
}
