package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/nextdoc/internal/output"
	"github.com/gorewood/nextdoc/internal/scan"
)

// FileEntry is one qualifying file, as it would appear in a report.
type FileEntry struct {
	Path     string `json:"path"     yaml:"path"`
	Language string `json:"language" yaml:"language"`
	Size     int64  `json:"size"     yaml:"size"`
}

// Inventory lists the files a report for appName would embed, in report
// order, without reading their contents. Paths use forward slashes.
func (g *Generator) Inventory(appName string) ([]FileEntry, error) {
	root, err := ResolveRoot(appName)
	if err != nil {
		return nil, err
	}

	entries := []FileEntry{}
	err = scan.Walk(root, g.scanOpts, func(ev scan.Event) error {
		if ev.Kind != scan.EventFile {
			return nil
		}
		var size int64
		if info, statErr := os.Stat(ev.Path); statErr == nil {
			size = info.Size()
		}
		entries = append(entries, FileEntry{
			Path:     filepath.ToSlash(ev.RelPath()),
			Language: ev.Language,
			Size:     size,
		})
		return nil
	})
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("scanning %s: %v", root, err), err)
	}
	return entries, nil
}
