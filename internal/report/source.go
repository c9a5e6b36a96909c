package report

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/gorewood/nextdoc/internal/scan"
)

// Source is the outcome of reading one qualifying file: either Content or
// Err is meaningful.
type Source struct {
	Name     string
	Path     string
	Language string
	Content  string
	Err      error
}

// OK reports whether the file was read successfully.
func (s Source) OK() bool {
	return s.Err == nil
}

// ReadSource reads the file behind a scan event as UTF-8 text. Line endings
// are normalised to "\n" and surrounding whitespace is trimmed. Failures are
// returned inside the Source, never as a separate error.
func ReadSource(ev scan.Event) Source {
	src := Source{Name: ev.Name, Path: ev.Path, Language: ev.Language}

	data, err := os.ReadFile(ev.Path)
	if err != nil {
		src.Err = err
		return src
	}

	text, err := decodeUTF8(data)
	if err != nil {
		src.Err = fmt.Errorf("decoding %s: %w", ev.Name, err)
		return src
	}

	src.Content = strings.TrimFunc(normalizeNewlines(text), isSpace)
	return src
}

// decodeUTF8 rejects input that is not valid UTF-8, reporting the offset of
// the first bad byte.
func decodeUTF8(data []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", fmt.Errorf("invalid byte at position %d: %w", n, err)
	}
	return string(out), nil
}

// isSpace extends unicode.IsSpace with the ASCII file, group, record and unit
// separators (U+001C to U+001F), which are also stripped.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
