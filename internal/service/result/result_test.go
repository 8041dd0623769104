package result

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "one", expected: "one"},
		{name: "quotes kept", input: `File "simple.csv" has been loaded.`, expected: `File "simple.csv" has been loaded.`},
		{name: "lone angle bracket", input: "a < b", expected: "a < b"},
		{name: "tags stripped", input: "</tr><button>hacked, harharhar!</button>", expected: "hacked, harharhar!"},
		{name: "script removed with body", input: "<script>alert('xss')</script>", expected: ""},
		{name: "encoded script neutralized", input: "&lt;script&gt;alert(1)&lt;/script&gt;", expected: ""},
		{name: "empty", input: "", expected: ""},
		{
			name:     "deeply encoded tag stripped",
			input:    "&amp;amp;amp;lt;b&amp;amp;amp;gt;x&amp;amp;amp;lt;/b&amp;amp;amp;gt;",
			expected: "x",
		},
		{
			name:     "deeply encoded script removed",
			input:    "&amp;amp;amp;amp;amp;lt;script&amp;amp;amp;amp;amp;gt;alert(1)&amp;amp;amp;amp;amp;lt;/script&amp;amp;amp;amp;amp;gt;",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestText(t *testing.T) {
	txt := NewText("command not found")
	assert.Equal(t, "command not found", txt.String())
	assert.Equal(t, template.HTML("command not found"), txt.Render())

	evil := NewText(`<b onclick="x()">bold</b> & "quoted"`)
	assert.Equal(t, `bold & "quoted"`, evil.String())
	assert.Equal(t, template.HTML("bold &amp; &#34;quoted&#34;"), evil.Render())
	assert.NotContains(t, string(evil.Render()), "<b")
}

func TestText_DeeplyEncodedMarkup(t *testing.T) {
	txt := NewText("&amp;amp;amp;lt;b&amp;amp;amp;gt;x&amp;amp;amp;lt;/b&amp;amp;amp;gt;")
	assert.Equal(t, "x", txt.String())
	assert.Equal(t, "x", Plain(txt))
}

func TestRow(t *testing.T) {
	input := []string{"one", "<i>two</i>", "three"}
	row := NewRow(input)

	assert.Equal(t, []string{"one", "two", "three"}, row.Cells())
	assert.Equal(t,
		template.HTML(`<table class="result-row"><tbody><tr><td>one</td><td>two</td><td>three</td></tr></tbody></table>`),
		row.Render(),
	)

	// construction copies the input
	input[0] = "changed"
	assert.Equal(t, "one", row.Cells()[0])

	// accessors return copies
	cells := row.Cells()
	cells[1] = "mutated"
	assert.Equal(t, "two", row.Cells()[1])
}

func TestTable_Render(t *testing.T) {
	data := [][]string{
		{"header1", "header2"},
		{"notaheader", "element"},
	}

	t.Run("with header", func(t *testing.T) {
		got := NewTable(data, true).Render()
		assert.Equal(t, template.HTML(
			`<table class="result-table"><thead><tr><th>header1</th><th>header2</th></tr></thead>`+
				`<tbody><tr><td>notaheader</td><td>element</td></tr></tbody></table>`), got)
	})

	t.Run("without header", func(t *testing.T) {
		got := NewTable(data, false).Render()
		assert.Equal(t, template.HTML(
			`<table class="result-table"><tbody><tr><td>header1</td><td>header2</td></tr>`+
				`<tr><td>notaheader</td><td>element</td></tr></tbody></table>`), got)
		assert.NotContains(t, string(got), "<th>")
	})

	t.Run("ragged rows", func(t *testing.T) {
		got := NewTable([][]string{{"a"}, {"b", "c", "d"}, {}}, false).Render()
		assert.Equal(t, template.HTML(
			`<table class="result-table"><tbody><tr><td>a</td></tr><tr><td>b</td><td>c</td><td>d</td></tr><tr></tr></tbody></table>`), got)
	})

	t.Run("empty with header", func(t *testing.T) {
		got := NewTable(nil, true).Render()
		assert.Equal(t, template.HTML(`<table class="result-table"><tbody></tbody></table>`), got)
	})
}

func TestTable_SanitizesCells(t *testing.T) {
	tbl := NewTable([][]string{{"</tr><button>hacked, harharhar!</button>"}}, false)

	require.Len(t, tbl.Rows(), 1)
	assert.Equal(t, "hacked, harharhar!", tbl.Rows()[0][0])
	assert.False(t, tbl.HasHeader())

	rendered := string(tbl.Render())
	assert.NotContains(t, rendered, "<button")
	assert.Equal(t, 1, strings.Count(rendered, "<tr>"))
}

func TestTable_RowsIsDeepCopy(t *testing.T) {
	tbl := NewTable([][]string{{"a", "b"}}, true)
	rows := tbl.Rows()
	rows[0][0] = "z"
	assert.Equal(t, "a", tbl.Rows()[0][0])
	assert.True(t, tbl.HasHeader())
}

func TestPlain(t *testing.T) {
	t.Run("text passes through", func(t *testing.T) {
		assert.Equal(t, "a < b", Plain(NewText("a < b")))
	})

	t.Run("table lists every cell", func(t *testing.T) {
		out := Plain(NewTable([][]string{
			{"one", "two"},
			{"five", "six"},
		}, false))
		for _, cell := range []string{"one", "two", "five", "six"} {
			assert.Contains(t, out, cell)
		}
		assert.NotContains(t, out, "<td>")
	})

	t.Run("row", func(t *testing.T) {
		out := Plain(NewRow([]string{"notaheader", "element"}))
		assert.Contains(t, out, "notaheader")
		assert.Contains(t, out, "element")
	})
}
