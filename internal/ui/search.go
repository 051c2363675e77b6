package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchApplyMsg applies the typed query once typing pauses. Messages with a
// stale seq are dropped.
type searchApplyMsg struct{ seq int }

func newSearchInput(s Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "search projects"
	ti.CharLimit = 64
	ti.Width = 30
	ti.TextStyle = s.Text
	ti.PlaceholderStyle = s.FaintText
	return ti
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	m.search.SetValue(m.filter.Query)
	m.search.CursorEnd()
	cmd := m.search.Focus()
	return m, cmd
}

func (m Model) debounceSearch() tea.Cmd {
	seq := m.searchSeq
	return tea.Tick(SearchDebounce, func(time.Time) tea.Msg { return searchApplyMsg{seq: seq} })
}

// handleSearchKey routes keys while the search prompt is open. Enter keeps
// the query, esc clears it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, m.quit()
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.searchSeq++
		m.applyQuery("")
		cmd := m.observe()
		return m, cmd
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		m.searchSeq++
		m.applyQuery(m.search.Value())
		cmd := m.observe()
		return m, cmd
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.searchSeq++
	return m, tea.Batch(cmd, m.debounceSearch())
}

func (m *Model) applyQuery(q string) {
	q = strings.TrimSpace(q)
	if q == m.filter.Query {
		return
	}
	m.filter.Query = q
	m.rebuild()
}
