package core

// Handler is the shape every command implements. Argument validation is the
// handler's job: failures come back as a Result, never as a panic or error.
type Handler func(args []string) Result

type CmdRouter interface {
	Register(name string, handler Handler)
	Execute(name string, args []string) Result
	Has(name string) bool
	ListCommands() []string
}
