// Package launcher generates the start scripts for Shiny apps, Plumber APIs
// and rendered R Markdown documents.
//
// All content types share one flow: refuse to clobber existing output,
// require the referenced content, render, write, echo. Kinds only differ in
// the files they produce.
package launcher

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/sellorm/rgear/internal/generator"
	"github.com/sellorm/rgear/internal/output"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Request is one validated generation request.
//
// Port is substituted verbatim, an empty Port included; callers wanting the
// usual port set it to DefaultPort.
type Request struct {
	ContentType string `yaml:"content_type"`
	SourcePath  string `yaml:"source_path"`
	Port        string `yaml:"port"`
	Overwrite   bool   `yaml:"overwrite"`
	Verbose     bool   `yaml:"verbose"`
	DryRun      bool   `yaml:"dry_run"`
}

// templateData is the data every template is rendered with.
type templateData struct {
	Path string
	Port string
}

// Generator renders and writes launcher files
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a new launcher generator
func NewGenerator() *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
	}
}

// Generate produces the files for req in the current working directory.
//
// Guard failures are returned as *guard.PreconditionError and nothing is
// written in that case.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	kind, ok := Lookup(req.ContentType)
	if !ok {
		return fmt.Errorf("unknown content type %q", req.ContentType)
	}

	output.Info(fmt.Sprintf("Generating %s...", kind.OutputList()))

	if output.IsVerbose() {
		if data, err := yaml.Marshal(req); err == nil {
			output.Verbose("Request:\n" + strings.TrimRight(string(data), "\n"))
		}
	}

	ops, err := g.Plan(kind, req)
	if err != nil {
		return err
	}

	err = generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun:  req.DryRun,
		Force:   req.Overwrite,
		Verbose: req.Verbose,
	})
	if err != nil {
		return err
	}

	output.Success("Complete.")
	return nil
}

// Plan renders every artifact of kind and returns the operations that
// write them, followed by the check that the source content exists.
func (g *Generator) Plan(kind Kind, req Request) ([]generator.Operation, error) {
	data := templateData{
		Path: req.SourcePath,
		Port: req.Port,
	}

	ops := make([]generator.Operation, 0, len(kind.Artifacts)+1)
	for _, a := range kind.Artifacts {
		content, err := g.renderer.RenderFS(templatesFS, a.Template, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", a.Name, err)
		}

		ops = append(ops, &generator.WriteFileOp{
			Path:    a.Name,
			Content: content,
			Mode:    a.Mode,
		})
	}

	// Output conflicts are reported before missing content
	ops = append(ops, &generator.RequireOp{Path: req.SourcePath})

	return ops, nil
}
