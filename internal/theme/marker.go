package theme

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Marker is the global style-scope marker that styling keys off.
type Marker interface {
	SetDark(dark bool)
}

// MarkerFunc adapts a function to Marker.
type MarkerFunc func(dark bool)

// SetDark implements Marker.
func (f MarkerFunc) SetDark(dark bool) { f(dark) }

// RendererMarker flips a lipgloss renderer's dark-background flag. Every
// lipgloss.AdaptiveColor rendered through that renderer resolves against it.
type RendererMarker struct {
	Renderer *lipgloss.Renderer
}

// SetDark implements Marker.
func (r RendererMarker) SetDark(dark bool) {
	if r.Renderer == nil {
		lipgloss.SetHasDarkBackground(dark)
		return
	}
	r.Renderer.SetHasDarkBackground(dark)
}

// FlagMarker records the marker in memory. Headless callers and tests use it.
type FlagMarker struct {
	dark atomic.Bool
	set  atomic.Int32
}

// SetDark implements Marker.
func (f *FlagMarker) SetDark(dark bool) {
	f.dark.Store(dark)
	f.set.Add(1)
}

// Dark reports the last value written.
func (f *FlagMarker) Dark() bool { return f.dark.Load() }

// Writes reports how many times the marker was written.
func (f *FlagMarker) Writes() int { return int(f.set.Load()) }
