// Package prefs handles folio user preferences persistence.
// Preferences are stored in ~/.config/folio/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for folio.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/folio/prefs.toml"
	defaultTheme     = "light"
)

// ErrUnavailable reports that the preferences file could not be read or written.
var ErrUnavailable = errors.New("preferences unavailable")

// Store persists Prefs.
type Store interface {
	Load() (Prefs, error)
	Save(Prefs) error
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from the given path, falling back to defaults if missing.
// A file that exists but cannot be read yields defaults and an error wrapping
// ErrUnavailable. Malformed content yields defaults and no error.
func Load(path string) (Prefs, error) {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("%w: open prefs: %w", ErrUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, fmt.Errorf("%w: read prefs: %w", ErrUnavailable, err)
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	prefs.Theme = strings.ToLower(strings.TrimSpace(prefs.Theme))
	if prefs.Theme == "" {
		prefs.Theme = defaultTheme
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("%w: resolve path: %w", ErrUnavailable, err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create prefs dir: %w", ErrUnavailable, err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("%w: write prefs: %w", ErrUnavailable, err)
	}

	return nil
}

// File is a Store backed by a TOML file. An empty Path uses DefaultPath.
type File struct {
	Path string
}

// Load implements Store.
func (f File) Load() (Prefs, error) { return Load(f.Path) }

// Save implements Store.
func (f File) Save(p Prefs) error { return Save(f.Path, p) }

// Memory is an in-process Store. It never fails.
type Memory struct {
	mu    sync.Mutex
	prefs Prefs
	set   bool
}

// NewMemory returns a Memory store seeded with p.
func NewMemory(p Prefs) *Memory {
	return &Memory{prefs: p, set: true}
}

// Load implements Store.
func (m *Memory) Load() (Prefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return Defaults(), nil
	}
	return m.prefs, nil
}

// Save implements Store.
func (m *Memory) Save(p Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = p
	m.set = true
	return nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
