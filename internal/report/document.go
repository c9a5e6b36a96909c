package report

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders as "DD/MM/YYYY at HH:MM:SS".
const TimestampLayout = "02/01/2006 at 15:04:05"

// Document is the ordered, append-only list of markdown blocks that make up
// a report. Blocks are joined with a single newline.
type Document struct {
	blocks []string
}

// NewDocument starts a report with the title, the generation time and the
// "File Structure" section header.
func NewDocument(appName string, generatedAt time.Time) *Document {
	d := &Document{}
	d.add(
		"# Documentation of the Next.js application "+appName,
		"\n*Documentation generated on "+generatedAt.Format(TimestampLayout)+"*\n",
		"\n## File Structure\n",
	)
	return d
}

// AddDirectory appends the header for a directory relative to the root.
func (d *Document) AddDirectory(rel string) {
	d.add(fmt.Sprintf("\n### %s %s\n", GlyphFolder, rel))
}

// AddSource appends a file block, or an error notice when the read failed.
func (d *Document) AddSource(src Source) {
	if !src.OK() {
		d.add(
			fmt.Sprintf("\n#### %s %s", GlyphError, src.Name),
			fmt.Sprintf("Read error: %v\n", src.Err),
		)
		return
	}

	d.add(
		fmt.Sprintf("\n#### %s %s\n", GlyphFor(src.Name), src.Name),
		"```"+src.Language,
		src.Content,
		"```\n",
	)
}

// Blocks returns a copy of the blocks in order.
func (d *Document) Blocks() []string {
	out := make([]string, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// String joins the blocks into the final markdown text.
func (d *Document) String() string {
	return strings.Join(d.blocks, "\n")
}

func (d *Document) add(blocks ...string) {
	d.blocks = append(d.blocks, blocks...)
}
