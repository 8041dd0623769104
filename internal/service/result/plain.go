package result

import (
	"strings"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/csvrepl/internal/core"
)

// Plain converts a rendered result to terminal text. Tables are drawn with
// borders; plain text passes through unchanged.
func Plain(r core.Result) string {
	if t, ok := r.(Text); ok {
		return t.String()
	}

	text, err := html2text.FromString(string(r.Render()), html2text.Options{
		PrettyTables: true,
		OmitLinks:    true,
	})
	if err != nil {
		// markup comes from this package; show it raw
		return string(r.Render())
	}
	return strings.TrimRight(text, "\n")
}
