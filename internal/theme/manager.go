package theme

import (
	"sync"

	"go.uber.org/zap"

	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
)

// Manager owns the process-wide theme mode. It is the only writer of the
// style-scope marker and of the persisted "theme" preference.
type Manager struct {
	mu     sync.Mutex
	store  prefs.Store
	marker Marker
	logger *zap.Logger
	mode   *state.Value[Mode]
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager in Light mode. Call Initialize before use.
// A nil store keeps the mode in memory only; a nil marker discards marker writes.
func NewManager(store prefs.Store, marker Marker, opts ...Option) *Manager {
	if marker == nil {
		marker = MarkerFunc(func(bool) {})
	}
	m := &Manager{
		store:  store,
		marker: marker,
		logger: zap.NewNop(),
		mode:   state.NewValue(Light),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize reads the persisted preference and applies the marker. Missing,
// invalid, or unreadable preferences yield Light. The marker is written before
// any subscriber is notified; subscribers only hear about Initialize when it
// changes the current mode.
func (m *Manager) Initialize() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()

	mode := m.load()
	m.marker.SetDark(mode.IsDark())
	if m.mode.Get() != mode {
		m.mode.Set(mode)
	}
	return mode
}

// Toggle flips the mode, applies the marker, persists, then notifies
// subscribers. Persist failures are logged and the new mode is kept in memory.
// Subscribers must not call Toggle or Initialize.
func (m *Manager) Toggle() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.mode.Get().Toggle()
	m.marker.SetDark(next.IsDark())
	m.persist(next)
	m.mode.Set(next)
	return next
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.mode.Get()
}

// Subscribe registers fn to be called with the new mode on every Toggle.
func (m *Manager) Subscribe(fn func(Mode)) (unsubscribe func()) {
	return m.mode.Subscribe(fn)
}

func (m *Manager) load() Mode {
	if m.store == nil {
		return Light
	}

	p, err := m.store.Load()
	if err != nil {
		m.logger.Warn("theme preference unavailable, using default",
			zap.Error(err),
			zap.Stringer("mode", Light))
		return Light
	}

	mode, ok := ParseMode(p.Theme)
	if !ok {
		m.logger.Debug("ignoring invalid theme preference", zap.String("value", p.Theme))
		return Light
	}
	return mode
}

func (m *Manager) persist(mode Mode) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(prefs.Prefs{Theme: mode.String()}); err != nil {
		m.logger.Warn("theme preference not saved, keeping it in memory",
			zap.Error(err),
			zap.Stringer("mode", mode))
	}
}
