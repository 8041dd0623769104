package core

import "html/template"

// Result is the output of a single command. It owns its data and never
// changes after construction.
type Result interface {
	// Render returns a markup fragment built only from the stored data.
	Render() template.HTML
}
