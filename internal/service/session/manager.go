package session

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/command"
	"github.com/sandevgo/csvrepl/internal/service/dataset"
	"github.com/sandevgo/csvrepl/pkg/log"
)

// Factory builds a fresh session for a user ID.
type Factory func(id string) *Session

// NewFactory returns a Factory giving every session its own mock dataset
// store, so one user's load_file never affects another's view.
func NewFactory(cfg core.AppConfig) Factory {
	return func(id string) *Session {
		store := dataset.NewMockStore(cfg.GetDataDir())
		return New(id, command.NewRouter(store),
			WithQuotedArgs(cfg.IsQuotedArgs()),
			WithDatasets(store.Names()),
		)
	}
}

type managed struct {
	session  *Session
	lastUsed time.Time
}

// Manager keeps one session per user ID for transports that serve many users.
// With an idle timeout set, Start evicts sessions nobody has touched for that
// long.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managed
	factory  Factory
	idle     time.Duration
	now      func() time.Time
}

type ManagerOption func(*Manager)

// WithIdleTimeout evicts sessions unused for d. Zero keeps them forever.
func WithIdleTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.idle = d
	}
}

func NewManager(factory Factory, opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*managed),
		factory:  factory,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the session for id, creating it on first use.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms, ok := m.sessions[id]
	if !ok {
		ms = &managed{session: m.factory(id)}
		m.sessions[id] = ms
	}
	ms.lastUsed = m.now()
	return ms.session
}

// Lookup returns the session for id without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	ms.lastUsed = m.now()
	return ms.session, true
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the timeout and reports how many
// went.
func (m *Manager) Sweep() int {
	if m.idle <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idle)
	dropped := 0
	for id, ms := range m.sessions {
		if ms.lastUsed.Before(cutoff) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Start sweeps idle sessions until ctx is done.
func (m *Manager) Start(ctx context.Context) error {
	if m.idle <= 0 {
		return nil
	}

	logger := log.FromCtx(ctx)
	ticker := time.NewTicker(sweepInterval(m.idle))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.Debug().Int("dropped", n).Int("sessions", m.Len()).Msg("evicted idle sessions")
			}
		}
	}
}

func (m *Manager) Shutdown(ctx context.Context) error {
	log.FromCtx(ctx).Info().Int("sessions", m.Len()).Msg("dropping sessions")
	return nil
}

func sweepInterval(idle time.Duration) time.Duration {
	interval := idle / 2
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
