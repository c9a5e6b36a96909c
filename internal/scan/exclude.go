package scan

import "strings"

// DefaultExcludedDirs are pruned at every level of the walk.
var DefaultExcludedDirs = []string{"node_modules", ".next", "public", "build", "dist"}

// Excluder decides which subdirectories are not descended into.
type Excluder struct {
	names map[string]struct{}
}

// NewExcluder returns an Excluder pruning the given names and any hidden
// directory.
func NewExcluder(names ...string) *Excluder {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return &Excluder{names: set}
}

// DefaultExcluder prunes hidden directories and DefaultExcludedDirs.
func DefaultExcluder() *Excluder {
	return NewExcluder(DefaultExcludedDirs...)
}

// Skip reports whether the directory called name must be pruned.
func (e *Excluder) Skip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if e == nil {
		return false
	}
	_, ok := e.names[name]
	return ok
}
