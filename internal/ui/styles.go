package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/theme"
)

// Styles contains pre-built Lipgloss styles for one renderer. Colours are
// adaptive: the renderer's dark-background flag, written by the theme
// manager, picks the light or dark variant at render time.
type Styles struct {
	palette theme.Palette
	r       *lipgloss.Renderer

	// Base
	Surface lipgloss.Style
	Page    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Logo        lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	Tagline     lipgloss.Style
	CommandBar  lipgloss.Style
	ProgressOn  lipgloss.Style
	ProgressOff lipgloss.Style
	Modal       lipgloss.Style
	MenuBox     lipgloss.Style
	Selected    lipgloss.Style
}

// NewStyles builds the styles for r from p. A nil renderer uses lipgloss's
// default renderer.
func NewStyles(r *lipgloss.Renderer, p theme.Palette) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		palette: p,
		r:       r,

		Surface: r.NewStyle().
			Background(p.Surface).
			Foreground(p.SurfaceFg),

		Page: r.NewStyle().
			Foreground(p.Text),

		Text: r.NewStyle().
			Foreground(p.Text),

		MutedText: r.NewStyle().
			Foreground(p.Muted),

		FaintText: r.NewStyle().
			Foreground(p.Faint),

		AccentText: r.NewStyle().
			Foreground(p.Accent),

		SuccessText: r.NewStyle().
			Foreground(p.Success).
			Bold(true),

		WarningText: r.NewStyle().
			Foreground(p.Warning),

		DangerText: r.NewStyle().
			Foreground(p.Danger).
			Bold(true),

		Logo: r.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		NavItem: r.NewStyle().
			Foreground(p.Muted),

		NavActive: r.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Underline(true),

		Tagline: r.NewStyle().
			Foreground(p.Accent).
			Italic(true),

		CommandBar: r.NewStyle().
			Background(p.Surface).
			Foreground(p.Muted).
			Padding(0, 1),

		ProgressOn: r.NewStyle().
			Foreground(p.Accent),

		ProgressOff: r.NewStyle().
			Foreground(p.Track),

		Modal: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		MenuBox: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Background(p.Surface).
			Padding(0, 1),

		Selected: r.NewStyle().
			Foreground(p.Surface).
			Background(p.Accent).
			Bold(true),
	}
}

// WithBackground returns a copy of the text styles with bg applied, for
// segments drawn on a filled bar.
func (s Styles) WithBackground(bg lipgloss.TerminalColor) Styles {
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.Logo = s.Logo.Background(bg)
	out.NavItem = s.NavItem.Background(bg)
	out.NavActive = s.NavActive.Background(bg)
	out.Tagline = s.Tagline.Background(bg)
	return out
}

// Renderer returns the renderer the styles were built for.
func (s Styles) Renderer() *lipgloss.Renderer { return s.r }

// Palette returns the colours the styles were built from.
func (s Styles) Palette() theme.Palette { return s.palette }
