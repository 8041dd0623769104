package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		quoted   bool
		wantName string
		wantArgs []string
	}{
		{name: "empty line", line: "", wantName: "", wantArgs: []string{}},
		{name: "blank line", line: "   \t ", wantName: "", wantArgs: []string{}},
		{name: "command only", line: "view", wantName: "view", wantArgs: []string{}},
		{name: "one argument", line: "load_file simple.csv", wantName: "load_file", wantArgs: []string{"simple.csv"}},
		{name: "extra whitespace", line: "  search   0\tone  ", wantName: "search", wantArgs: []string{"0", "one"}},
		{
			name:     "quotes ignored by default",
			line:     `search 1 "final not-header"`,
			wantName: "search",
			wantArgs: []string{"1", `"final`, `not-header"`},
		},
		{
			name:     "quotes group words",
			line:     `search 1 "final not-header"`,
			quoted:   true,
			wantName: "search",
			wantArgs: []string{"1", "final not-header"},
		},
		{
			name:     "single quotes",
			line:     `example 'hello world'`,
			quoted:   true,
			wantName: "example",
			wantArgs: []string{"hello world"},
		},
		{
			name:     "unterminated quote falls back",
			line:     `search 0 "one`,
			quoted:   true,
			wantName: "search",
			wantArgs: []string{"0", `"one`},
		},
		{name: "quoted empty line", line: "", quoted: true, wantName: "", wantArgs: []string{}},
		{name: "semicolon kept", line: "example a;b", quoted: true, wantName: "example", wantArgs: []string{"a;b"}},
		{name: "pipe kept", line: "search 0 a|b", quoted: true, wantName: "search", wantArgs: []string{"0", "a|b"}},
		{name: "redirect kept", line: "example x>y", quoted: true, wantName: "example", wantArgs: []string{"x>y"}},
		{name: "ampersand kept", line: "search 1 a&b", quoted: true, wantName: "search", wantArgs: []string{"1", "a&b"}},
		{
			name:     "quoted operator stays quoted",
			line:     `example "a|b c"`,
			quoted:   true,
			wantName: "example",
			wantArgs: []string{"a|b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := Tokenize(tt.line, tt.quoted)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Verbose")
	assert.NoError(t, err)
	assert.Equal(t, ModeVerbose, m)

	m, err = ParseMode(" brief ")
	assert.NoError(t, err)
	assert.Equal(t, ModeBrief, m)

	_, err = ParseMode("loud")
	assert.Error(t, err)

	assert.Equal(t, ModeBrief, ModeVerbose.Toggle())
	assert.Equal(t, ModeVerbose, ModeBrief.Toggle())
}
