package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRegistry_Language(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		ext    string
		want   string
		wantOK bool
	}{
		{".js", "javascript", true},
		{".jsx", "javascript", true},
		{".ts", "typescript", true},
		{".tsx", "typescript", true},
		{".css", "css", true},
		{".scss", "scss", true},
		{".json", "json", true},
		{".html", "html", true},
		{".md", "markdown", true},
		{".TS", "", false},
		{".go", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := reg.Language(tt.ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	langs := map[string]string{".go": "go"}
	reg := NewRegistry(langs)
	langs[".rs"] = "rust"

	_, ok := reg.Language(".rs")
	assert.False(t, ok, "registry must not see later changes to the source map")
	assert.Equal(t, []string{".go"}, reg.Extensions())
}

func TestRegistry_Extensions_Sorted(t *testing.T) {
	got := DefaultRegistry().Extensions()
	want := []string{".css", ".html", ".js", ".json", ".jsx", ".md", ".scss", ".ts", ".tsx"}
	assert.Equal(t, want, got)
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"page.tsx", ".tsx"},
		{"next.config.js", ".js"},
		{"README.md", ".md"},
		{".eslintrc.json", ".json"},
		{".md", ""},
		{"..md", ""},
		{".eslintrc", ""},
		{"Makefile", ""},
		{"trailing.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitExt(tt.name))
		})
	}
}

func TestExcluder_Skip(t *testing.T) {
	ex := DefaultExcluder()

	for _, name := range []string{"node_modules", ".next", "public", "build", "dist", ".git", ".hidden"} {
		assert.Truef(t, ex.Skip(name), "expected %q to be skipped", name)
	}
	for _, name := range []string{"src", "app", "pages", "components", "Build", "distribution"} {
		assert.Falsef(t, ex.Skip(name), "expected %q to be walked", name)
	}
}
