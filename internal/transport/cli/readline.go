package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/pkg/log"
)

// ReadLine is the line-mode shell for terminals where the full-screen UI is
// unwanted. It prints each entry right after it is submitted.
type ReadLine struct {
	session *session.Session
	mode    session.Mode
	rl      *readline.Instance
}

func NewReadLine(s *session.Session, mode session.Mode) (*ReadLine, error) {
	// No HistoryFile: input history lives only as long as the process.
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(s.Commands(), s.Datasets()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{
		session: s,
		mode:    mode,
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Debug().Str("mode", string(r.mode)).Msg("line shell started")
	fmt.Fprintln(r.rl.Stdout(), "Type 'help' for commands, ':mode' to toggle output, 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit":
			return nil
		case ":mode":
			r.mode = r.mode.Toggle()
			fmt.Fprintf(r.rl.Stdout(), "output mode: %s\n", r.mode)
			continue
		}

		entry := r.session.Submit(ctx, line)
		fmt.Fprintln(r.rl.Stdout(), entry.Plain(r.mode))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// completer offers command names, and dataset names after load_file.
func completer(commands, datasets []string) *readline.PrefixCompleter {
	files := make([]readline.PrefixCompleterInterface, 0, len(datasets))
	for _, name := range datasets {
		files = append(files, readline.PcItem(name))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, name := range commands {
		if name == "load_file" {
			items = append(items, readline.PcItem(name, files...))
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
