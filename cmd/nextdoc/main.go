// Package main provides the entry point for the nextdoc CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/nextdoc/internal/output"
	"github.com/gorewood/nextdoc/internal/report"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// persistentFlag reads a persistent flag value from the command hierarchy.
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the nextdoc CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextdoc <app-name>",
		Short: "Concatenate a Next.js app's sources into one markdown report",
		Long: `nextdoc - Document a Next.js application as a single markdown file.

nextdoc walks <app-name> (node_modules, .next, public, build, dist and hidden
directories are skipped), embeds every .js .jsx .ts .tsx .css .scss .json
.html and .md file in a fenced code block, and writes the result to
<app-name>/nextjs_code_<app-name>_vNN.md. Existing reports are never
overwritten: each run takes the next free version number.

Examples:
  nextdoc web                  # writes web/nextjs_code_web_v01.md
  nextdoc web --skip-reports   # leave earlier reports out of the new one
  nextdoc list web             # show what would be embedded
  nextdoc serve                # run as an MCP server over stdio`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          exactlyOneApp("nextdoc <app-name>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0])
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().Bool("skip-reports", false, "Leave earlier nextjs_code_*_vNN.md reports out of the scan")
	cmd.PersistentFlags().Bool("verbose", false, "Warn about directories that cannot be read")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateColorFlag(cmd)
	}

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// exactlyOneApp returns an argument validator that prints the usage line and
// fails with a user error unless exactly one argument is given.
func exactlyOneApp(usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return nil
		}
		err := output.NewUserError("Usage: " + usage)
		printer := newPrinter(cmd)
		if printer.IsJSON() {
			printer.Error(err)
			return err
		}
		printer.Println(err.Message)
		return err
	}
}

func validateColorFlag(cmd *cobra.Command) error {
	switch mode := persistentFlag(cmd, "color"); mode {
	case "", "auto", "always", "never":
		return nil
	default:
		err := output.NewUserError(fmt.Sprintf("--color must be 'auto', 'always' or 'never', got %q", mode))
		newPrinter(cmd).Error(err)
		return err
	}
}

// newPrinter builds a Printer from the --json and --color flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	colored := output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), colored).WithStderr(cmd.ErrOrStderr())
}

// generatorOptions maps the persistent flags onto report options.
func generatorOptions(cmd *cobra.Command, printer *output.Printer) []report.Option {
	opts := []report.Option{
		report.WithSkipReports(persistentFlag(cmd, "skip-reports") == "true"),
	}
	if persistentFlag(cmd, "verbose") == "true" && !printer.IsJSON() {
		opts = append(opts, report.WithDirErrorHandler(func(path string, err error) {
			printer.Warn("skipping unreadable directory %s: %v", path, err)
		}))
	}
	return opts
}

// runGenerate writes the next versioned report for appName.
func runGenerate(cmd *cobra.Command, appName string) error {
	printer := newPrinter(cmd)

	summary, err := report.NewGenerator(generatorOptions(cmd, printer)...).Generate(appName)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":       "ok",
			"app_name":     summary.AppName,
			"root":         summary.Root,
			"output_path":  summary.OutputPath,
			"generated_at": summary.GeneratedAt.Format(time.RFC3339),
			"directories":  summary.Directories,
			"files":        summary.Files,
			"read_errors":  summary.ReadErrors,
		})
	}

	if err := printer.Success(map[string]any{
		"message": output.GlyphSuccess + " Documentation generated: " + summary.OutputPath,
	}); err != nil {
		return err
	}
	if persistentFlag(cmd, "verbose") == "true" {
		printer.Dim("%d directories, %d files, %d read errors", summary.Directories, summary.Files, summary.ReadErrors)
	}
	return nil
}
