package theme

import "strings"

// Mode is the light/dark display mode shared by every view.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the persisted spelling of the mode.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// ParseMode parses "light" or "dark", ignoring case and surrounding space.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Light, false
	}
}
