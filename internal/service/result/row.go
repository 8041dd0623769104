package result

import (
	"html/template"
	"strings"

	"github.com/sandevgo/csvrepl/internal/core"
)

// Row is a single table row, typically a search hit.
type Row struct {
	cells []string
}

var _ core.Result = Row{}

func NewRow(cells []string) Row {
	return Row{cells: sanitizeAll(cells)}
}

// Cells returns a copy of the sanitized cells.
func (r Row) Cells() []string {
	return append([]string(nil), r.cells...)
}

func (r Row) Render() template.HTML {
	var sb strings.Builder
	sb.WriteString(`<table class="result-row"><tbody>`)
	writeRow(&sb, "td", r.cells)
	sb.WriteString("</tbody></table>")
	return template.HTML(sb.String())
}

func writeRow(sb *strings.Builder, tag string, cells []string) {
	sb.WriteString("<tr>")
	for _, c := range cells {
		sb.WriteString("<" + tag + ">")
		sb.WriteString(template.HTMLEscapeString(c))
		sb.WriteString("</" + tag + ">")
	}
	sb.WriteString("</tr>")
}
