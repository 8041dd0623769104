package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "plain text", input: "Hello world", expected: "Hello world\n"},
		{name: "bold text", input: "**bold**", expected: "<strong>bold</strong>\n"},
		{name: "italic text", input: "*italic*", expected: "<em>italic</em>\n"},
		{name: "inline code", input: "`view`", expected: "<code>view</code>\n"},
		{name: "header tags stripped", input: "# Datasets", expected: "Datasets\n"},
		{name: "script tags sanitized", input: "<script>alert('xss')</script>", expected: "\n"},
		{
			name:     "command hint",
			input:    "Send `help` for *all* commands",
			expected: "Send <code>help</code> for <em>all</em> commands\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestPreformatted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "<pre></pre>"},
		{name: "table text", input: "a | b\nc | d", expected: "<pre>a | b\nc | d</pre>"},
		{name: "markup escaped", input: "<b>x</b> & y", expected: "<pre>&lt;b&gt;x&lt;/b&gt; &amp; y</pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preformatted(tt.input))
		})
	}
}
