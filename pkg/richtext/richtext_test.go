package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "plain text",
			markup: "Hello World",
			want:   "Hello World",
		},
		{
			name:   "inline formatting",
			markup: "<b>Hello</b> <i>World</i>",
			want:   "Hello World",
		},
		{
			name:   "entities decoded",
			markup: "Tom &amp; Jerry &lt;3",
			want:   "Tom & Jerry <3",
		},
		{
			name:   "line break",
			markup: "Hello<br>World",
			want:   "Hello\nWorld",
		},
		{
			name:   "block elements",
			markup: "<div>first</div><div>second</div>",
			want:   "first\nsecond",
		},
		{
			name:   "hidden elements skipped",
			markup: "<style>p{color:red}</style>visible<script>alert(1)</script>",
			want:   "visible",
		},
		{
			name:   "lexical paragraphs",
			markup: `{"root":{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","text":"Hello"}]},{"type":"paragraph","children":[{"type":"text","text":"World"}]}]}}`,
			want:   "Hello\nWorld",
		},
		{
			name:   "lexical numbered list",
			markup: `{"root":{"type":"root","children":[{"type":"list","listType":"number","children":[{"type":"listitem","children":[{"type":"text","text":"one"}]},{"type":"listitem","children":[{"type":"text","text":"two"}]}]}]}}`,
			want:   "1. one\n2. two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleText(tt.markup))
		})
	}
}

func TestIsBlank(t *testing.T) {
	blank := []string{
		"",
		"   ",
		"<br>",
		"<div><br></div>",
		"<p>&nbsp;</p>",
		"<span>  </span>\n",
		`{"root":{"type":"root","children":[{"type":"paragraph","children":[]}]}}`,
	}
	for _, markup := range blank {
		assert.True(t, IsBlank(markup), "expected %q to be blank", markup)
	}

	filled := []string{
		"x",
		"<b>bold</b>",
		"<div><br>text</div>",
		`{"root":{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","text":"x"}]}]}}`,
	}
	for _, markup := range filled {
		assert.False(t, IsBlank(markup), "expected %q to have visible text", markup)
	}
}

func TestLexicalParser_Parse(t *testing.T) {
	p := NewLexicalParser()

	t.Run("check list", func(t *testing.T) {
		text, err := p.Parse(`{"root":{"type":"root","children":[{"type":"list","listType":"check","children":[{"type":"listitem","checked":true,"children":[{"type":"text","text":"done"}]},{"type":"listitem","children":[{"type":"text","text":"todo"}]}]}]}}`)
		require.NoError(t, err)
		assert.Equal(t, "[x] done\n[ ] todo", text)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := p.Parse(`{"root":`)
		assert.Error(t, err)
	})

	t.Run("malformed lexical falls back to raw text", func(t *testing.T) {
		assert.Equal(t, `{"root": oops`, VisibleText(`{"root": oops`))
	})
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Hello big world", Preview("<p>Hello</p><p>big   world</p>", 0))
	assert.Equal(t, "Hello bi…", Preview("<p>Hello</p><p>big   world</p>", 8))
	assert.Equal(t, "short", Preview("short", 10))
}
