package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/streamline-dev/streamline/internal/project"
)

// Record is the on-disk summary of the options a project was created with.
type Record struct {
	Name        string `yaml:"name" json:"name"`
	Edition     string `yaml:"edition" json:"edition"`
	Docs        string `yaml:"docs" json:"docs"`
	Tests       string `yaml:"tests" json:"tests"`
	ToolVersion string `yaml:"tool_version,omitempty" json:"tool_version,omitempty"`
}

// NewRecord builds the record for a validated config.
func NewRecord(cfg project.Config, toolVersion string) *Record {
	return &Record{
		Name:        cfg.Name,
		Edition:     string(cfg.Edition),
		Docs:        string(cfg.Docs),
		Tests:       string(cfg.Tests),
		ToolVersion: toolVersion,
	}
}

// Config re-validates the record's fields and returns them as a Config.
func (r *Record) Config() (project.Config, error) {
	docs, err := project.ParseDocsGenerator(r.Docs)
	if err != nil {
		return project.Config{}, err
	}
	tests, err := project.ParseTestFramework(r.Tests)
	if err != nil {
		return project.Config{}, err
	}
	return project.ValidateSyntax(r.Name, r.Edition, docs, tests)
}

// Parse decodes a record from YAML.
func Parse(data []byte) (*Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing project record: %w", err)
	}
	return &r, nil
}

// Load reads the record under root. A missing record is reported with an
// error satisfying os.IsNotExist through errors.Is(err, fs.ErrNotExist).
func Load(root project.Root) (*Record, error) {
	data, err := readFile(root.Join(project.RecordFile))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
