// Package generator provides the plumbing shared by every rgear generator:
// template rendering and validated file operations.
//
// # Rendering
//
// Templates are parsed with text/template, so substituted values are
// inserted verbatim (no HTML or shell escaping):
//
//	r := generator.NewRenderer()
//	content, err := r.RenderFS(templatesFS, "templates/shiny.sh.tmpl", data)
//
// # Operations
//
// Generators return a list of operations which Execute validates and then
// runs in order:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "app.sh", Content: content, Mode: 0755},
//	    &generator.RequireOp{Path: "myapp"},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: force})
//
// Every operation is validated before anything is written, so a failed
// precondition leaves the filesystem untouched. Execution itself is not
// transactional: a failure while writing the second file leaves the first
// one in place.
package generator
