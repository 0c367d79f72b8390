package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/manifest"
	"github.com/streamline-dev/streamline/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// File is a rendered file of a plan.
type File struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
	Mode    fs.FileMode
}

// Plan is a fully rendered scaffold: directories to create and file
// contents to write, in order.
type Plan struct {
	Config project.Config
	Dirs   []string
	Files  []File
}

// Paths returns every directory and file path of the plan, directories first.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Dirs)+len(p.Files))
	paths = append(paths, p.Dirs...)
	for _, f := range p.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// File returns the planned file at path.
func (p *Plan) File(path string) (File, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}

// templateData holds the variables available to every template.
type templateData struct {
	Name        string
	Edition     project.Edition
	Docs        project.DocsGenerator
	Tests       project.TestFramework
	ToolVersion string
	HomeDir     string
	GTestURL    string
	// Record is the marshaled project record. Names such as "123", "null"
	// or "-" must read back as strings.
	Record string
}

type renderOptions struct {
	toolVersion string
}

// Option configures Render.
type Option func(*renderOptions)

// WithToolVersion stamps the generating tool's version into the project record.
func WithToolVersion(v string) Option {
	return func(o *renderOptions) {
		o.toolVersion = v
	}
}

// Render fills every file of sk from its template. Only the validated name
// and edition are interpolated, so the same inputs always produce the same bytes.
func Render(sk Skeleton, cfg project.Config, opts ...Option) (*Plan, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	data := templateData{
		Name:        cfg.Name,
		Edition:     cfg.Edition,
		Docs:        cfg.Docs,
		Tests:       cfg.Tests,
		ToolVersion: o.toolVersion,
		HomeDir:     branding.HomeDir(),
		GTestURL:    GTestArchive,
	}
	record, err := yaml.Marshal(manifest.NewRecord(cfg, o.toolVersion))
	if err != nil {
		return nil, fmt.Errorf("marshaling project record: %w", err)
	}
	data.Record = string(record)

	plan := &Plan{
		Config: cfg,
		Dirs:   append([]string(nil), sk.Dirs...),
		Files:  make([]File, 0, len(sk.Files)),
	}
	for _, f := range sk.Files {
		content, err := renderTemplate(f.Template, data)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, File{Path: f.Path, Content: content, Mode: f.Mode})
	}
	return plan, nil
}

// NewPlan lays out and renders cfg in one step.
func NewPlan(cfg project.Config, opts ...Option) (*Plan, error) {
	return Render(Layout(cfg), cfg, opts...)
}

func renderTemplate(name string, data templateData) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
