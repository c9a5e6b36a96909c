package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/nextdoc/internal/report"
)

// --- Shared input ---

// AppInput names the application directory to work on.
type AppInput struct {
	App         string `json:"app"                    jsonschema:"application directory, relative to the server working directory or absolute"`
	SkipReports *bool  `json:"skip_reports,omitempty" jsonschema:"exclude earlier nextjs_code_*_vNN.md reports from the scan"`
}

// generator builds a Generator from the server options and the per-call
// override.
func generator(base []report.Option, input AppInput) *report.Generator {
	opts := append([]report.Option{}, base...)
	if input.SkipReports != nil {
		opts = append(opts, report.WithSkipReports(*input.SkipReports))
	}
	return report.NewGenerator(opts...)
}

func validateApp(input AppInput) error {
	if input.App == "" {
		return errors.New("app is required")
	}
	return nil
}

// --- list_files ---

// ListFilesOutput is the output for the list_files tool.
type ListFilesOutput struct {
	Count int                `json:"count" jsonschema:"number of files that would be embedded"`
	Files []report.FileEntry `json:"files" jsonschema:"files in report order"`
}

func handleListFiles(base []report.Option) mcp.ToolHandlerFor[AppInput, ListFilesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AppInput) (*mcp.CallToolResult, ListFilesOutput, error) {
		if err := validateApp(input); err != nil {
			return nil, ListFilesOutput{}, err
		}

		files, err := generator(base, input).Inventory(input.App)
		if err != nil {
			return nil, ListFilesOutput{}, err
		}
		return nil, ListFilesOutput{Count: len(files), Files: files}, nil
	}
}

// --- generate_report ---

// GenerateReportOutput is the output for the generate_report tool.
type GenerateReportOutput struct {
	OutputPath  string `json:"output_path"  jsonschema:"absolute path of the written report"`
	Directories int    `json:"directories"  jsonschema:"number of directory sections"`
	Files       int    `json:"files"        jsonschema:"number of embedded files"`
	ReadErrors  int    `json:"read_errors"  jsonschema:"number of files that could not be read"`
	GeneratedAt string `json:"generated_at" jsonschema:"generation timestamp (RFC3339)"`
}

func handleGenerateReport(base []report.Option) mcp.ToolHandlerFor[AppInput, GenerateReportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AppInput) (*mcp.CallToolResult, GenerateReportOutput, error) {
		if err := validateApp(input); err != nil {
			return nil, GenerateReportOutput{}, err
		}

		summary, err := generator(base, input).Generate(input.App)
		if err != nil {
			return nil, GenerateReportOutput{}, err
		}

		return nil, GenerateReportOutput{
			OutputPath:  summary.OutputPath,
			Directories: summary.Directories,
			Files:       summary.Files,
			ReadErrors:  summary.ReadErrors,
			GeneratedAt: summary.GeneratedAt.Format(time.RFC3339),
		}, nil
	}
}
