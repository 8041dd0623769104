package session

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/result"
	"github.com/sandevgo/csvrepl/pkg/log"
)

// Entry is one submission: the raw line and what it produced.
type Entry struct {
	Line   string
	Result core.Result
	At     time.Time
}

// Plain formats the entry as terminal text.
func (e Entry) Plain(mode Mode) string {
	out := result.Plain(e.Result)
	if mode == ModeVerbose {
		return "> " + e.Line + "\n" + out
	}
	return out
}

// Session owns a router and the history of everything submitted to it.
// Submissions are processed one at a time.
type Session struct {
	id       string
	router   core.CmdRouter
	quoted   bool
	datasets []string

	mu      sync.Mutex
	entries []Entry
}

type Option func(*Session)

// WithQuotedArgs enables shell-style quoting in submitted lines.
func WithQuotedArgs(quoted bool) Option {
	return func(s *Session) {
		s.quoted = quoted
	}
}

// WithDatasets records the dataset names load_file accepts, for completion.
func WithDatasets(names []string) Option {
	return func(s *Session) {
		s.datasets = append([]string(nil), names...)
	}
}

func New(id string, router core.CmdRouter, opts ...Option) *Session {
	s := &Session{
		id:     id,
		router: router,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Commands() []string {
	return s.router.ListCommands()
}

// Datasets lists the names load_file accepts, if known.
func (s *Session) Datasets() []string {
	return append([]string(nil), s.datasets...)
}

// Submit tokenizes line, runs it and appends the outcome to the history.
func (s *Session) Submit(ctx context.Context, line string) Entry {
	name, args := Tokenize(line, s.quoted)

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.router.Execute(name, args)
	entry := Entry{
		Line:   line,
		Result: res,
		At:     time.Now(),
	}
	s.entries = append(s.entries, entry)

	log.FromCtx(ctx).Debug().
		Str("session", s.id).
		Str("command", name).
		Int("args", len(args)).
		Bool("known", s.router.Has(name)).
		Int("history", len(s.entries)).
		Msg("command executed")

	return entry
}

// Entries returns the history in submission order.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Recent returns the history newest first.
func (s *Session) Recent() []Entry {
	entries := s.Entries()
	slices.Reverse(entries)
	return entries
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Transcript renders the whole history in submission order.
func (s *Session) Transcript(mode Mode) string {
	entries := s.Entries()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Plain(mode)
	}
	return strings.Join(parts, "\n")
}
