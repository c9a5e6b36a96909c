package scan

import (
	"sort"
	"strings"
)

// Registry maps file extensions (with the leading dot) to the language tag
// used on the markdown code fence. A Registry is never mutated after
// construction.
type Registry struct {
	langs map[string]string
}

// defaultLanguages is the extension table used by DefaultRegistry.
var defaultLanguages = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".css":  "css",
	".scss": "scss",
	".json": "json",
	".html": "html",
	".md":   "markdown",
}

// NewRegistry builds a Registry from ext -> language pairs.
// The map is copied so later changes by the caller have no effect.
func NewRegistry(langs map[string]string) *Registry {
	copied := make(map[string]string, len(langs))
	for ext, lang := range langs {
		copied[ext] = lang
	}
	return &Registry{langs: copied}
}

// DefaultRegistry returns the registry for Next.js projects.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultLanguages)
}

// Language returns the fence tag for ext. Matching is exact and
// case-sensitive: ".TS" is not ".ts".
func (r *Registry) Language(ext string) (string, bool) {
	if r == nil || ext == "" {
		return "", false
	}
	lang, ok := r.langs[ext]
	return lang, ok
}

// Lookup returns the fence tag for a file name, using SplitExt.
func (r *Registry) Lookup(name string) (string, bool) {
	return r.Language(SplitExt(name))
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	if r == nil {
		return nil
	}
	exts := make([]string, 0, len(r.langs))
	for ext := range r.langs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// SplitExt returns the extension of name including the dot.
//
// Unlike filepath.Ext, leading dots never start an extension: ".md" and
// ".eslintrc" have no extension, while ".eslintrc.json" has ".json".
func SplitExt(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	// Dots at the start of the name belong to the stem.
	if strings.Trim(name[:idx], ".") == "" {
		return ""
	}
	return name[idx:]
}
