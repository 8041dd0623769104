package result

import (
	"html/template"
	"strings"

	"github.com/sandevgo/csvrepl/internal/core"
)

// Table is a two-dimensional result. Rows may have different lengths.
type Table struct {
	rows      [][]string
	hasHeader bool
}

var _ core.Result = Table{}

func NewTable(rows [][]string, hasHeader bool) Table {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = sanitizeAll(row)
	}
	return Table{rows: data, hasHeader: hasHeader}
}

// Rows returns a deep copy of the sanitized cells.
func (t Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func (t Table) HasHeader() bool {
	return t.hasHeader
}

func (t Table) Render() template.HTML {
	var sb strings.Builder
	sb.WriteString(`<table class="result-table">`)

	body := t.rows
	if t.hasHeader && len(t.rows) > 0 {
		sb.WriteString("<thead>")
		writeRow(&sb, "th", t.rows[0])
		sb.WriteString("</thead>")
		body = t.rows[1:]
	}

	sb.WriteString("<tbody>")
	for _, row := range body {
		writeRow(&sb, "td", row)
	}
	sb.WriteString("</tbody></table>")
	return template.HTML(sb.String())
}
