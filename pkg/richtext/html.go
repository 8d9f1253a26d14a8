package richtext

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// htmlText walks markup token by token and keeps what a browser would render
// as text. Tags are dropped, entities decoded, hidden elements skipped, and
// block elements and <br> become line breaks.
func htmlText(markup string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(markup))

	var sb strings.Builder
	hiddenDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return strings.TrimRight(sb.String(), "\n"), err
			}
			return strings.TrimRight(sb.String(), "\n"), nil

		case html.TextToken:
			if hiddenDepth > 0 {
				continue
			}
			sb.Write(z.Text())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if htmlHiddenTags[tag] && tt == html.StartTagToken {
				hiddenDepth++
				continue
			}
			if tag == "br" {
				sb.WriteByte('\n')
			} else if htmlBlockTags[tag] && sb.Len() > 0 {
				writeBreak(&sb)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if htmlHiddenTags[tag] {
				if hiddenDepth > 0 {
					hiddenDepth--
				}
				continue
			}
			if htmlBlockTags[tag] {
				writeBreak(&sb)
			}
		}
	}
}

// writeBreak appends a newline unless the builder already ends with one.
func writeBreak(sb *strings.Builder) {
	s := sb.String()
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return
	}
	sb.WriteByte('\n')
}
