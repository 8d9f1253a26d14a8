// Package richtext recovers the visible text of the markup produced by rich
// text editors: HTML from contenteditable fields and Lexical JSON states.
package richtext

import (
	"strings"
)

// VisibleText returns the text a reader would see once markup is rendered.
// Lexical JSON is walked node by node; anything else is tokenized as HTML.
// Malformed input falls back to whatever text was recovered so far, or to the
// raw string when nothing could be parsed.
func VisibleText(markup string) string {
	if IsLexical(markup) {
		text, err := NewLexicalParser().Parse(strings.TrimSpace(markup))
		if err == nil {
			return text
		}
	}

	text, err := htmlText(markup)
	if err != nil && text == "" {
		return markup
	}
	return text
}

// IsBlank reports whether markup renders to nothing but whitespace.
func IsBlank(markup string) bool {
	return strings.TrimSpace(VisibleText(markup)) == ""
}

// Preview returns the visible text collapsed to a single line and cut to at
// most limit runes, with an ellipsis when truncated. limit <= 0 disables the cut.
func Preview(markup string, limit int) string {
	line := strings.Join(strings.Fields(VisibleText(markup)), " ")
	if limit <= 0 {
		return line
	}

	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}
