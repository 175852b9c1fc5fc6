package launcher

import (
	"io/fs"
	"strings"
)

// DefaultPort is the port offered by the CLI when none is given.
const DefaultPort = "8888"

const (
	// LauncherName is the start script every content type produces.
	LauncherName = "app.sh"
	// RedirectName is the landing page produced for documents.
	RedirectName = "index.html"

	launcherMode fs.FileMode = 0755
	// redirectMode is the default creation mode; umask still applies.
	redirectMode fs.FileMode = 0666
)

// Artifact describes one file a content type produces.
type Artifact struct {
	Name     string      // Output file name, relative to the working directory
	Template string      // Path of the template inside templatesFS
	Mode     fs.FileMode // Creation mode; execute bits are enforced with chmod
}

// Kind is a supported content type and the files generated for it.
type Kind struct {
	Name        string // Value accepted on the command line
	Description string
	SourceLabel string // What the path argument must point at
	Artifacts   []Artifact
}

var kinds = []Kind{
	{
		Name:        "shiny",
		Description: "interactive Shiny app",
		SourceLabel: "app directory",
		Artifacts: []Artifact{
			{Name: LauncherName, Template: "templates/shiny.sh.tmpl", Mode: launcherMode},
		},
	},
	{
		Name:        "plumber",
		Description: "Plumber API server",
		SourceLabel: "API definition file",
		Artifacts: []Artifact{
			{Name: LauncherName, Template: "templates/plumber.sh.tmpl", Mode: launcherMode},
		},
	},
	{
		Name:        "rmarkdown",
		Description: "static server for a rendered R Markdown document",
		SourceLabel: "rendered HTML document",
		Artifacts: []Artifact{
			{Name: LauncherName, Template: "templates/rmarkdown.sh.tmpl", Mode: launcherMode},
			{Name: RedirectName, Template: "templates/redirect.html.tmpl", Mode: redirectMode},
		},
	},
}

// Kinds returns the supported content types in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Names returns the accepted content types in display order.
func Names() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}
	return names
}

// Lookup finds the content type called name.
func Lookup(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// OutputList names the generated files for progress messages,
// e.g. "app.sh" or "app.sh and index.html".
func (k Kind) OutputList() string {
	names := make([]string, len(k.Artifacts))
	for i, a := range k.Artifacts {
		names[i] = a.Name
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
