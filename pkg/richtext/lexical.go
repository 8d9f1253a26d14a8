package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LexicalParser extracts the visible text of a Lexical JSON document
type LexicalParser struct{}

// NewLexicalParser creates a new parser instance
func NewLexicalParser() *LexicalParser {
	return &LexicalParser{}
}

// IsLexical reports whether content looks like a serialized Lexical editor state
func IsLexical(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, `{"root":`)
}

// Parse converts a Lexical JSON string to plain text, one line per block
func (p *LexicalParser) Parse(jsonContent string) (string, error) {
	var root LexicalRoot
	if err := json.Unmarshal([]byte(jsonContent), &root); err != nil {
		return "", fmt.Errorf("failed to parse lexical json: %w", err)
	}

	var sb strings.Builder
	p.walkNode(root.Root, &sb)
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (p *LexicalParser) walkNode(node Node, sb *strings.Builder) {
	switch node.Type {
	case "text", "code-highlight":
		sb.WriteString(node.Text)

	case "linebreak":
		sb.WriteString("\n")

	case "tab":
		sb.WriteString("\t")

	case "list":
		p.handleList(node, sb)

	case "tablecell":
		for _, child := range node.Children {
			p.walkNode(child, sb)
		}
		sb.WriteString("\t")

	default:
		for _, child := range node.Children {
			p.walkNode(child, sb)
		}
		if lexicalBlockTypes[node.Type] {
			sb.WriteString("\n")
		}
	}
}

func (p *LexicalParser) handleList(node Node, sb *strings.Builder) {
	index := 1
	if node.Start > 0 {
		index = node.Start
	}

	for _, child := range node.Children {
		if child.Type != "listitem" {
			continue
		}

		switch node.ListType {
		case "number":
			sb.WriteString(fmt.Sprintf("%d. ", index))
			index++
		case "check":
			if child.Checked {
				sb.WriteString("[x] ")
			} else {
				sb.WriteString("[ ] ")
			}
		}

		p.walkNode(child, sb)
	}
}
