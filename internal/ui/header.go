package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/content"
)

// renderProgressBar draws the reading progress across the full width. The
// fill follows the spring-smoothed progress, not the raw sample.
func (m Model) renderProgressBar() string {
	width := max(m.width, 0)
	filled := int(math.Round(m.progress * float64(width)))
	filled = min(max(filled, 0), width)
	return m.styles.ProgressOn.Render(strings.Repeat("━", filled)) +
		m.styles.ProgressOff.Render(strings.Repeat("─", width-filled))
}

// renderHeader renders the two header rows. At the top of the page the
// header is transparent and shows the typed tagline; past the scroll
// threshold it is compact: filled with the surface colour with a rule below.
func (m Model) renderHeader() string {
	if m.flags.PastThreshold {
		return m.renderCompactHeader()
	}
	return m.renderExpandedHeader()
}

func (m Model) renderExpandedHeader() string {
	styles := m.styles
	first := m.headerRow(styles, nil)

	tagline := " " + styles.MutedText.Render("›") + " " +
		styles.Tagline.Render(m.typer.Text()) + styles.AccentText.Render("▌")
	second := padRight(truncate(tagline, m.width), m.width)
	return first + "\n" + second
}

func (m Model) renderCompactHeader() string {
	p := m.styles.Palette()
	styles := m.styles.WithBackground(p.Surface)
	bg := NewBgStyle(m.renderer, p.Surface)

	first := bg.FillLine(m.headerRow(styles, &bg), m.width)
	rule := m.renderer.NewStyle().
		Foreground(p.Border).
		Background(p.Surface).
		Render(strings.Repeat("─", max(m.width, 0)))
	return first + "\n" + rule
}

// headerRow lays out the logo, the navigation (or the menu toggle on mobile
// widths), and the theme indicator. Positions match navLayout and
// menuToggleRect so clicks land on what is drawn.
func (m Model) headerRow(styles Styles, bg *BgStyle) string {
	render := func(text string, style lipgloss.Style) string {
		if bg != nil {
			return bg.Render(text, style)
		}
		return style.Render(text)
	}
	space := func(n int) string {
		if bg != nil {
			return bg.Spaces(n)
		}
		return strings.Repeat(" ", max(n, 0))
	}

	logo := m.portfolio.Profile.Initials
	var b strings.Builder
	b.WriteString(space(1))
	b.WriteString(render(logo, styles.Logo))
	col := 1 + lipgloss.Width(logo)

	if isMobile(m.width) {
		toggle := menuToggleRect(m.width)
		label := "[m] menu"
		if m.showMenu {
			label = "[m] close"
		}
		b.WriteString(space(toggle.X - col))
		b.WriteString(render(truncate(label, m.width-toggle.X), styles.AccentText))
		return b.String()
	}

	active := activeSection(m.page.Anchors, m.vp.YOffset)
	for _, slot := range navLayout(m.width, logo) {
		b.WriteString(space(slot.X - col))
		style := styles.NavItem
		if slot.ID == active {
			style = styles.NavActive
		}
		b.WriteString(render(slot.Label, style))
		col = slot.X + lipgloss.Width(slot.Label)
	}

	indicator := "☾ dark"
	if !m.theme.Mode().IsDark() {
		indicator = "☀ light"
	}
	if gap := m.width - col - lipgloss.Width(indicator) - 1; gap > 0 {
		b.WriteString(space(gap))
		b.WriteString(render(indicator, styles.FaintText))
	}
	return b.String()
}

// renderCommandBar renders the bottom key hints.
func (m Model) renderCommandBar() string {
	p := m.styles.Palette()
	styles := m.styles.WithBackground(p.Surface)
	bg := NewBgStyle(m.renderer, p.Surface)

	if m.searching {
		prompt := bg.Render("/", styles.AccentText) + bg.Space() + m.search.View()
		return m.styles.CommandBar.Width(m.width).Render(prompt)
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"1-8", "Jump"},
		{"f", filterLabel(m.filter.Category)},
		{"/", "Search"},
		{"c", "Contact"},
		{"t", "Theme"},
		{"?", "Help"},
		{"q", "Quit"},
	}
	if isMobile(m.width) {
		commands = []cmd{
			{"m", "Menu"},
			{"t", "Theme"},
			{"?", "Help"},
			{"q", "Quit"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	if q := strings.TrimSpace(m.filter.Query); q != "" {
		segments = append(segments, bg.Render("/"+truncate(q, 18), styles.AccentText))
	}

	bar := strings.Join(segments, bg.Spaces(2))
	return m.styles.CommandBar.Width(m.width).MaxHeight(1).Render(bar)
}

func filterLabel(c content.ProjectCategory) string {
	switch c {
	case content.CategoryAcademic:
		return "Academic"
	case content.CategoryPersonal:
		return "Personal"
	default:
		return "All"
	}
}
