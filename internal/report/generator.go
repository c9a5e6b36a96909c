package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/nextdoc/internal/output"
	"github.com/gorewood/nextdoc/internal/scan"
)

// Summary describes a generated (or built) report.
type Summary struct {
	AppName     string    `json:"app_name"              yaml:"app_name"`
	Root        string    `json:"root"                  yaml:"root"`
	OutputPath  string    `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	GeneratedAt time.Time `json:"generated_at"          yaml:"generated_at"`
	Directories int       `json:"directories"           yaml:"directories"`
	Files       int       `json:"files"                 yaml:"files"`
	ReadErrors  int       `json:"read_errors"           yaml:"read_errors"`
}

// Generator builds reports. A Generator holds no per-run state and may be
// reused.
type Generator struct {
	scanOpts scan.Options
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithScanOptions replaces the registry and exclusion rules.
func WithScanOptions(opts scan.Options) Option {
	return func(g *Generator) {
		g.scanOpts = opts
	}
}

// WithSkipReports drops files named like earlier nextdoc reports from the
// scan. Without it, earlier reports are ordinary .md files and are embedded.
func WithSkipReports(skip bool) Option {
	return func(g *Generator) {
		if skip {
			g.scanOpts.SkipFile = IsReportFile
		} else {
			g.scanOpts.SkipFile = nil
		}
	}
}

// WithDirErrorHandler observes directories that could not be listed.
func WithDirErrorHandler(fn func(path string, err error)) Option {
	return func(g *Generator) {
		g.scanOpts.OnDirError = fn
	}
}

// NewGenerator returns a Generator using the Next.js scan rules and the
// wall clock unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		scanOpts: scan.DefaultOptions(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ScanOptions returns the scan rules in effect.
func (g *Generator) ScanOptions() scan.Options {
	return g.scanOpts
}

// ResolveRoot checks that appName exists and returns its absolute path.
// A missing path is a user error.
func ResolveRoot(appName string) (string, error) {
	if _, err := os.Stat(appName); err != nil {
		return "", output.NewUserError(fmt.Sprintf("The application %s does not exist in the project!", appName))
	}

	root, err := filepath.Abs(appName)
	if err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("resolving %s: %v", appName, err), err)
	}
	return root, nil
}

// Build scans appName and returns the report without writing it.
func (g *Generator) Build(appName string) (*Document, Summary, error) {
	root, err := ResolveRoot(appName)
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{
		AppName:     appName,
		Root:        root,
		GeneratedAt: g.now(),
	}
	doc := NewDocument(ReportName(appName, root), summary.GeneratedAt)

	err = scan.Walk(root, g.scanOpts, func(ev scan.Event) error {
		if ev.Kind == scan.EventDir {
			doc.AddDirectory(ev.RelDir)
			summary.Directories++
			return nil
		}

		src := ReadSource(ev)
		doc.AddSource(src)
		if src.OK() {
			summary.Files++
		} else {
			summary.ReadErrors++
		}
		return nil
	})
	if err != nil {
		return nil, Summary{}, output.NewSystemErrorWithCause(fmt.Sprintf("scanning %s: %v", root, err), err)
	}

	return doc, summary, nil
}

// Generate builds the report for appName and writes it to the next free
// versioned path inside the application directory.
func (g *Generator) Generate(appName string) (Summary, error) {
	doc, summary, err := g.Build(appName)
	if err != nil {
		return Summary{}, err
	}

	path := NextOutputPath(summary.Root, ReportName(appName, summary.Root))
	if err := writeNew(path, doc.String()); err != nil {
		return Summary{}, err
	}

	summary.OutputPath = path
	return summary, nil
}

// writeNew creates path and writes content to it. It refuses to replace an
// existing file.
func writeNew(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("creating report %s: %v", path, err), err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause(fmt.Sprintf("writing report %s: %v", path, err), err)
	}

	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("closing report %s: %v", path, err), err)
	}
	return nil
}
