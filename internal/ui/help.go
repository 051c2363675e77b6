package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.styles

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"1-8", "Jump to section"},
				{"m", "Toggle menu (narrow terminals)"},
				{"j/k", "Scroll down/up"},
				{"g/G", "Go to top/bottom"},
				{"ctrl+d/u", "Half page down/up"},
				{"space/b", "Page down/up"},
			},
		},
		{
			title: "Projects",
			items: []helpItem{
				{"f", "Cycle category"},
				{"/", "Search projects"},
				{"esc", "Clear search"},
			},
		},
		{
			title: "Contact",
			items: []helpItem{
				{"c", "Open form"},
				{"tab", "Next field"},
				{"ctrl+s", "Send"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"t", "Toggle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := styles.WarningText.Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return m.placeModal(b.String(), 40)
}

// placeModal boxes content and centres it on an otherwise blank screen.
func (m Model) placeModal(content string, width int) string {
	width = min(width, max(m.width-2, 10))
	box := m.styles.Modal.Width(width).Render(content)
	return m.renderer.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
