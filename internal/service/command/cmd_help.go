package command

import (
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/result"
)

// Help lists defs as a table with a header row.
func Help(defs []Definition) core.Handler {
	rows := make([][]string, 0, len(defs)+2)
	rows = append(rows, []string{"command", "usage", "description"})
	for _, s := range defs {
		rows = append(rows, []string{s.Name, s.Usage, s.Description})
	}
	rows = append(rows, []string{"help", "help", "List available commands"})

	return func(args []string) core.Result {
		if len(args) != 0 {
			return result.NewText("Incorrect usage: help has no arguments.")
		}
		return result.NewTable(rows, true)
	}
}
