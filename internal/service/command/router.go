package command

import (
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/result"
)

const msgNotFound = "command not found"

// Router maps command names to handlers. The first registration of a name
// wins; later ones are ignored.
type Router struct {
	handlers map[string]core.Handler
	order    []string
}

var _ core.CmdRouter = (*Router)(nil)

func New() *Router {
	return &Router{
		handlers: make(map[string]core.Handler),
	}
}

func (r *Router) Register(name string, handler core.Handler) {
	if handler == nil {
		return
	}
	if _, ok := r.handlers[name]; ok {
		return
	}
	r.handlers[name] = handler
	r.order = append(r.order, name)
}

// Execute runs the named command. Unknown names are a normal outcome and
// produce a "command not found" Text.
func (r *Router) Execute(name string, args []string) core.Result {
	handler, ok := r.handlers[name]
	if !ok {
		return result.NewText(msgNotFound)
	}
	if res := handler(args); res != nil {
		return res
	}
	return result.NewText("")
}

func (r *Router) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// ListCommands returns command names in registration order.
func (r *Router) ListCommands() []string {
	return append([]string(nil), r.order...)
}
