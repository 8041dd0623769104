package result

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips every tag from s and returns plain text. Entities that the
// policy leaves behind are decoded and the text is stripped again until it
// stops changing, so markup hidden under any depth of encoding is removed.
func Sanitize(s string) string {
	// Every productive pass removes a tag or decodes an entity, so the text
	// shrinks and len(s)+1 passes always reach a fixed point.
	for passes := len(s) + 1; passes > 0; passes-- {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	// Unreachable in practice; the escaped form carries no live markup.
	return strictPolicy.Sanitize(s)
}

func sanitizeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = Sanitize(c)
	}
	return out
}
