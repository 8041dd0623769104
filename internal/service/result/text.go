package result

import (
	"html/template"

	"github.com/sandevgo/csvrepl/internal/core"
)

// Text is a single line of sanitized output.
type Text struct {
	data string
}

var _ core.Result = Text{}

func NewText(data string) Text {
	return Text{data: Sanitize(data)}
}

func (t Text) String() string {
	return t.data
}

func (t Text) Render() template.HTML {
	return template.HTML(template.HTMLEscapeString(t.data))
}
