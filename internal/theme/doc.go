// Package theme owns folio's light/dark mode.
//
// Manager is created once per program (or once per SSH session), initialized
// from a prefs.Store, and toggled by the user. Every change is applied in a
// fixed order:
//
//	Toggle()
//	  1. next := current.Toggle()
//	  2. marker.SetDark(next)      style-scope marker
//	  3. store.Save(next)          "theme" = "light" | "dark"
//	  4. subscribers(next)         in subscription order
//
// The marker is the single global switch styling keys off. In the terminal it
// is a lipgloss renderer's dark-background flag: every lipgloss.AdaptiveColor
// in Palette resolves against it when rendered, so views never branch on the
// mode themselves. Only the Manager writes the marker.
//
// Persistence failures never reach callers. Initialize falls back to Light
// and Toggle keeps the new mode in memory; both log through zap.
package theme
