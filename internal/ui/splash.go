package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splashDoneMsg struct{}

func newSpinner(s Styles) spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.AccentText
	return sp
}

func splashCmd() tea.Cmd {
	return tea.Tick(SplashDuration, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (m Model) renderSplash() string {
	logo := m.styles.Logo.Render(m.portfolio.Profile.Initials)
	body := lipgloss.JoinVertical(lipgloss.Center,
		logo,
		"",
		m.spinner.View()+" "+m.styles.MutedText.Render("Loading portfolio..."),
	)
	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
