package command

import (
	"github.com/sandevgo/csvrepl/internal/core"
)

// Definition describes a built-in command for registration and for help output.
type Definition struct {
	Name        string
	Usage       string
	Description string
	Handler     core.Handler
}

func Builtins(store core.DatasetStore) []Definition {
	return []Definition{
		{
			Name:        "example",
			Usage:       "example [echo]",
			Description: "Echo a single argument back",
			Handler:     Example,
		},
		{
			Name:        "load_file",
			Usage:       "load_file [path to file]",
			Description: "Load a dataset from the data directory",
			Handler:     store.Load,
		},
		{
			Name:        "view",
			Usage:       "view",
			Description: "Show the loaded dataset",
			Handler:     store.View,
		},
		{
			Name:        "search",
			Usage:       "search [header_id] [term]",
			Description: "Find the first row whose column equals term",
			Handler:     store.Search,
		},
	}
}

// NewRouter builds a router over store with every built-in command plus help.
func NewRouter(store core.DatasetStore) *Router {
	defs := Builtins(store)

	r := New()
	for _, s := range defs {
		r.Register(s.Name, s.Handler)
	}
	r.Register("help", Help(defs))
	return r
}
