package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sellorm/rgear"
	"github.com/sellorm/rgear/internal/config"
	"github.com/sellorm/rgear/internal/generators/launcher"
	"github.com/sellorm/rgear/internal/guard"
	"github.com/sellorm/rgear/internal/output"
	"github.com/spf13/cobra"
)

// rootOptions holds the parsed flags of the root command
type rootOptions struct {
	force      bool
	verbose    bool
	dryRun     bool
	port       string
	configPath string
}

// RootCmd creates and returns the root command for the rgear CLI
func RootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "rgear <content_type> <path>",
		Short: "Generates helper scripts for starting R based content servers",
		Long:  rootLong(),
		Example: `  rgear shiny myapp --port 9000
  rgear plumber plumber.R
  rgear rmarkdown report.html --force --verbose`,
		Version:   rgear.Version,
		ValidArgs: launcher.Names(),
		Args:      contentTypeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &opts)
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(flagErrorFunc(nil))

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "force overwrite if the output file(s) already exist")
	cmd.Flags().StringVarP(&opts.port, "port", "p", launcher.DefaultPort, "override the default port setting")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "check and render without writing any files")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "read flag defaults from this YAML file")

	return cmd
}

// Execute runs cmd with args. A --version anywhere on the command line wins,
// even over flags the parser rejects.
func Execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	cmd.SetFlagErrorFunc(flagErrorFunc(args))
	return cmd.Execute()
}

// flagErrorFunc turns flag parse errors into usage errors unless args asked
// for the version
func flagErrorFunc(args []string) func(*cobra.Command, error) error {
	return func(c *cobra.Command, err error) error {
		if versionRequested(args) {
			fmt.Fprintln(c.OutOrStdout(), rgear.Version)
			return nil
		}
		return &UsageError{Err: err}
	}
}

// versionRequested reports whether --version appears before any "--"
func versionRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version":
			return true
		}
	}
	return false
}

// rootLong builds the long help text from the registered content types
func rootLong() string {
	var b strings.Builder
	b.WriteString("rgear writes an app.sh start script for R based content.\n\n")
	b.WriteString("Content types:\n")
	for _, k := range launcher.Kinds() {
		fmt.Fprintf(&b, "  %-10s - %s; path is the %s (writes %s)\n",
			k.Name, k.Description, k.SourceLabel, k.OutputList())
	}
	b.WriteString("\nExisting output files are never replaced unless --force is given.\n\n")
	b.WriteString("For detailed help, please see https://github.com/sellorm/rgear")
	return b.String()
}

// contentTypeArgs requires exactly a content type and a path, and restricts
// the content type to the registered kinds
func contentTypeArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return &UsageError{Err: err}
	}

	if _, ok := launcher.Lookup(args[0]); !ok {
		return &UsageError{Err: fmt.Errorf("invalid content type %q (choose from %s)",
			args[0], strings.Join(launcher.Names(), ", "))}
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	if opts.configPath != "" {
		defaults, err := config.Load(opts.configPath)
		if err != nil {
			return &UsageError{Err: err}
		}
		applyDefaults(cmd, opts, defaults)
	}

	output.SetOutput(cmd.OutOrStdout())
	output.SetVerbose(opts.verbose)

	req := launcher.Request{
		ContentType: args[0],
		SourcePath:  args[1],
		Port:        opts.port,
		Overwrite:   opts.force,
		Verbose:     opts.verbose,
		DryRun:      opts.dryRun,
	}

	err := launcher.NewGenerator().Generate(cmd.Context(), req)
	if err == nil {
		return nil
	}

	// From here on the failure is not about usage: report it ourselves
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var perr *guard.PreconditionError
	if errors.As(err, &perr) {
		output.Error(perr.Error())
		output.Detail(perr.Hint())
	} else {
		output.Error(err.Error())
	}

	return err
}

// applyDefaults copies config values into flags the user did not set
func applyDefaults(cmd *cobra.Command, opts *rootOptions, d *config.Defaults) {
	flags := cmd.Flags()

	if !flags.Changed("port") && d.Port != "" {
		opts.port = d.Port
	}
	if !flags.Changed("force") && d.Force {
		opts.force = true
	}
	if !flags.Changed("verbose") && d.Verbose {
		opts.verbose = true
	}
}
