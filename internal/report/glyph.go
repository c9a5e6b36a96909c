package report

// Glyphs used in report headers.
const (
	GlyphApp      = "⚡"
	GlyphDocument = "📄"
	GlyphIndex    = "🏠"
	GlyphAPI      = "🌐"
	GlyphConfig   = "⚙️"
	GlyphPackage  = "📦"
	GlyphReadme   = "📖"
	GlyphFile     = "📄"
	GlyphFolder   = "📁"
	GlyphError    = "❌"
)

// glyphRules is checked in order; the first rule naming the file wins.
var glyphRules = []struct {
	names []string
	glyph string
}{
	{[]string{"_app.js", "_app.tsx"}, GlyphApp},
	{[]string{"_document.js", "_document.tsx"}, GlyphDocument},
	{[]string{"index.js", "index.tsx"}, GlyphIndex},
	{[]string{"api.js", "api.ts"}, GlyphAPI},
	{[]string{"next.config.js"}, GlyphConfig},
	{[]string{"package.json"}, GlyphPackage},
	{[]string{"README.md"}, GlyphReadme},
}

// GlyphFor returns the header glyph for a file name. Matching is exact and
// case-sensitive.
func GlyphFor(filename string) string {
	for _, rule := range glyphRules {
		for _, name := range rule.names {
			if name == filename {
				return rule.glyph
			}
		}
	}
	return GlyphFile
}
