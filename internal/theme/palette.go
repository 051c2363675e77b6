package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the adaptive colours every view draws with. Each slot carries
// a light and a dark value; the renderer's dark-background flag, written by
// the Manager through its Marker, picks one at render time.
type Palette struct {
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Faint     lipgloss.AdaptiveColor
	Primary   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
	SurfaceFg lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Track     lipgloss.AdaptiveColor
}

// DefaultPalette returns the portfolio palette (Tailwind gray/blue).
func DefaultPalette() Palette {
	return Palette{
		Text:      lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}, // gray-700 / gray-300
		Muted:     lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}, // gray-600 / gray-400
		Faint:     lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}, // gray-400 / gray-500
		Primary:   lipgloss.AdaptiveColor{Light: "#1e3a8a", Dark: "#ffffff"}, // blue-900 / white
		Accent:    lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}, // blue-600 / blue-400
		Surface:   lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"}, // white / gray-900
		SurfaceFg: lipgloss.AdaptiveColor{Light: "#1e3a8a", Dark: "#f9fafb"}, // blue-900 / gray-50
		Border:    lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1f2937"}, // gray-200 / gray-800
		Success:   lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}, // green-700 / green-400
		Warning:   lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}, // amber-700 / amber-400
		Danger:    lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}, // red-700 / red-400
		Track:     lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}, // gray-200 / gray-700
	}
}

// GlamourStyle names the glamour standard style for mode.
func GlamourStyle(mode Mode) string {
	if mode.IsDark() {
		return "dark"
	}
	return "light"
}
