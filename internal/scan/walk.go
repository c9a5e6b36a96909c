package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrStop can be returned by a VisitFunc to end the walk early without error.
var ErrStop = errors.New("scan: stop")

// EventKind distinguishes directory and file events.
type EventKind int

// Event kinds emitted by Walk.
const (
	EventDir EventKind = iota
	EventFile
)

// String returns "dir" or "file".
func (k EventKind) String() string {
	if k == EventDir {
		return "dir"
	}
	return "file"
}

// Event is one step of the walk.
type Event struct {
	Kind EventKind
	// RelDir is the directory containing the entry, relative to the root
	// ("." for the root). For EventDir it is the directory itself.
	RelDir string
	// Name is the base name of the file; empty for EventDir.
	Name string
	// Path is the absolute path of the directory or file.
	Path string
	// Language is the registry fence tag; empty for EventDir.
	Language string
}

// RelPath returns the path of the entry relative to the root.
func (e Event) RelPath() string {
	if e.Kind == EventDir {
		return e.RelDir
	}
	if e.RelDir == "." {
		return e.Name
	}
	return filepath.Join(e.RelDir, e.Name)
}

// VisitFunc receives walk events. Returning a non-nil error aborts the walk;
// ErrStop aborts it without reporting an error.
type VisitFunc func(ev Event) error

// Options configures Walk. The zero value walks nothing useful; start from
// DefaultOptions.
type Options struct {
	Registry *Registry
	Exclude  *Excluder
	// SkipFile drops qualifying files by name. Optional.
	SkipFile func(name string) bool
	// OnDirError is called for directories that cannot be listed. Optional.
	OnDirError func(path string, err error)
}

// DefaultOptions returns the Next.js registry and exclusion rules.
func DefaultOptions() Options {
	return Options{
		Registry: DefaultRegistry(),
		Exclude:  DefaultExcluder(),
	}
}

// Walk visits root top-down and calls fn for every non-root directory and
// every qualifying file. See the package documentation for ordering.
func Walk(root string, opts Options, fn VisitFunc) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	w := &walker{root: abs, opts: opts, fn: fn}
	err = w.visit(abs, ".")
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

type walker struct {
	root string
	opts Options
	fn   VisitFunc
}

// visit handles one directory: its own event, its files, then its subdirs.
func (w *walker) visit(dir, rel string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if w.opts.OnDirError != nil {
			w.opts.OnDirError(dir, err)
		}
		return nil
	}

	if rel != "." {
		if err := w.fn(Event{Kind: EventDir, RelDir: rel, Path: dir}); err != nil {
			return err
		}
	}

	files, subdirs := w.split(dir, entries)

	for _, name := range files {
		lang, ok := w.opts.Registry.Lookup(name)
		if !ok {
			continue
		}
		if w.opts.SkipFile != nil && w.opts.SkipFile(name) {
			continue
		}
		ev := Event{
			Kind:     EventFile,
			RelDir:   rel,
			Name:     name,
			Path:     filepath.Join(dir, name),
			Language: lang,
		}
		if err := w.fn(ev); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		childRel := name
		if rel != "." {
			childRel = filepath.Join(rel, name)
		}
		if err := w.visit(filepath.Join(dir, name), childRel); err != nil {
			return err
		}
	}

	return nil
}

// split sorts entries into file names and the subdirectories to descend
// into. Symlinks to directories count as directories but are never
// followed; everything else that is not a directory counts as a file.
func (w *walker) split(dir string, entries []fs.DirEntry) (files, subdirs []string) {
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			if !w.opts.Exclude.Skip(name) {
				subdirs = append(subdirs, name)
			}
		case entry.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(filepath.Join(dir, name))
			if err == nil && info.IsDir() {
				continue
			}
			files = append(files, name)
		default:
			files = append(files, name)
		}
	}

	sort.Strings(files)
	sort.Strings(subdirs)
	return files, subdirs
}
