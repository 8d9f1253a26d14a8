package richtext

// LexicalRoot represents the top-level structure of a Lexical editor state
type LexicalRoot struct {
	Root Node `json:"root"`
}

// Node represents any node in the Lexical tree.
// Only the fields needed to recover visible text are decoded.
type Node struct {
	Type     string `json:"type"`
	Version  int    `json:"version"`
	Children []Node `json:"children,omitempty"`

	// Text specific
	Text string `json:"text,omitempty"`

	// List specific
	ListType string `json:"listType,omitempty"` // check, bullet, number
	Start    int    `json:"start,omitempty"`

	// ListItem specific
	Checked bool `json:"checked,omitempty"`
}

// Node types that end a visual line.
var lexicalBlockTypes = map[string]bool{
	"paragraph": true,
	"heading":   true,
	"quote":     true,
	"listitem":  true,
	"code":      true,
	"tablerow":  true,
}

// HTML elements rendered as their own line, mirroring a browser's innerText.
var htmlBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

// Elements whose text never reaches the screen.
var htmlHiddenTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}
