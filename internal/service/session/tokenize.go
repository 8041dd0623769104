package session

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// Tokenize splits a line into a command name and its arguments. An empty
// line yields the empty name, which never matches a command. With quoted set,
// shell-style quoting groups words; a malformed line, or one the shell parser
// would cut short at an operator such as ; | & < >, falls back to the plain
// whitespace split.
func Tokenize(line string, quoted bool) (string, []string) {
	fields := strings.Fields(line)
	if quoted {
		if parsed, ok := parseQuoted(line); ok {
			fields = parsed
		}
	}

	if len(fields) == 0 {
		return "", []string{}
	}
	return fields[0], fields[1:]
}

func parseQuoted(line string) ([]string, bool) {
	p := shellwords.NewParser()
	parsed, err := p.Parse(line)
	if err != nil {
		return nil, false
	}
	// Position is the offset of an unquoted operator that stopped the parse
	if p.Position != -1 {
		return nil, false
	}
	return parsed, true
}
