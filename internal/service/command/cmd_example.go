package command

import (
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/result"
)

// Example is the reference for adding a command: validate arity, then build
// a Result.
func Example(args []string) core.Result {
	if len(args) != 1 {
		return result.NewText("Invalid argument length, correct usage: example [echo]")
	}
	return result.NewText("This command takes in one argument, and echos it back: " + args[0])
}
