package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/internal/service/ui"
)

// reserved rows: header, blank, input, hint
const chromeHeight = 5

// Model is the interactive shell: a login gate, the history (newest first)
// and the command input.
type Model struct {
	ctx     context.Context
	session *session.Session

	input textinput.Model
	mode  session.Mode

	requireLogin bool
	loggedIn     bool
	quitting     bool

	width  int
	height int
}

func NewModel(ctx context.Context, s *session.Session, mode session.Mode, requireLogin bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter a command (help lists them)"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return Model{
		ctx:          ctx,
		session:      s,
		input:        ti,
		mode:         mode,
		requireLogin: requireLogin,
		loggedIn:     !requireLogin,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 4 {
			m.input.Width = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

		if !m.loggedIn {
			if msg.Type == tea.KeyEnter {
				m.loggedIn = true
				return m, textinput.Blink
			}
			return m, nil
		}

		switch msg.String() {
		case "enter":
			m.session.Submit(m.ctx, m.input.Value())
			m.input.Reset()
			return m, nil
		case "ctrl+t":
			m.mode = m.mode.Toggle()
			return m, nil
		case "ctrl+o":
			if m.requireLogin {
				m.loggedIn = false
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(ui.TitleStyle.Render(core.AppName))
	sb.WriteString("\n")

	if !m.loggedIn {
		sb.WriteString("Press enter to log in.\n\n")
		sb.WriteString(ui.DescStyle.Render("(esc to quit)"))
		sb.WriteString("\n")
		return sb.String()
	}

	if history := m.renderHistory(); history != "" {
		sb.WriteString(history)
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	hint := fmt.Sprintf("mode: %s · %d submissions · ctrl+t toggle mode", m.mode, m.session.Len())
	if m.requireLogin {
		hint += " · ctrl+o sign out"
	}
	hint += " · esc quit"
	sb.WriteString(ui.DescStyle.Render(hint))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderHistory() string {
	entries := m.session.Recent()
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, ui.EntryStyle.Render(renderEntry(e, m.mode)))
	}
	out := strings.Join(blocks, "\n")

	// newest entries are on top, so cutting the tail drops the oldest
	if m.height > chromeHeight {
		lines := strings.Split(out, "\n")
		if limit := m.height - chromeHeight; len(lines) > limit {
			out = strings.Join(lines[:limit], "\n")
		}
	}
	return out
}

func renderEntry(e session.Entry, mode session.Mode) string {
	out := e.Plain(session.ModeBrief)
	if mode == session.ModeVerbose {
		return ui.CommandStyle.Render("> "+e.Line) + "\n" + out
	}
	return out
}

// Run starts the full-screen shell and blocks until the user quits.
func Run(ctx context.Context, s *session.Session, mode session.Mode, requireLogin bool) error {
	p := tea.NewProgram(
		NewModel(ctx, s, mode, requireLogin),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
