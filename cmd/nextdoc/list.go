package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/nextdoc/internal/output"
	"github.com/gorewood/nextdoc/internal/report"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "list <app-name>",
		Short: "Show the files a report would embed",
		Long: `Show the files a report for <app-name> would embed, in report order,
without reading them or writing anything.

Examples:
  nextdoc list web                  # table of path, language and size
  nextdoc list web --format yaml    # YAML sequence
  nextdoc list web --json           # JSON object with count and files`,
		Args: exactlyOneApp("nextdoc list <app-name>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], formatFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "table", "Output format: table or yaml (--json overrides)")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, appName, formatFlag string) error {
	printer := newPrinter(cmd)

	if formatFlag != "table" && formatFlag != "yaml" {
		err := output.NewUserError("--format must be 'table' or 'yaml'")
		printer.Error(err)
		return err
	}

	files, err := report.NewGenerator(generatorOptions(cmd, printer)...).Inventory(appName)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"app_name": appName,
			"count":    len(files),
			"files":    files,
		})
	}

	if formatFlag == "yaml" {
		return writeYAML(printer, files)
	}

	writeTable(printer, files)
	return nil
}

func writeYAML(printer *output.Printer, files []report.FileEntry) error {
	data, err := yaml.Marshal(files)
	if err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("encoding YAML: %v", err), err)
	}
	printer.Print("%s", data)
	return nil
}

func writeTable(printer *output.Printer, files []report.FileEntry) {
	if len(files) == 0 {
		printer.Dim("No files to document")
		return
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{f.Path, f.Language, strconv.FormatInt(f.Size, 10)})
	}
	printer.Table([]string{"PATH", "LANGUAGE", "SIZE"}, rows)
	printer.Dim("%d files", len(files))
}
