package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// typeTickMsg advances the typed tagline. seq drops ticks from a previous
// role list after a content reload.
type typeTickMsg struct{ seq int }

// typewriter types each role, pauses, erases it, and moves to the next.
type typewriter struct {
	roles    []string
	role     int
	shown    int
	deleting bool
	seq      int
}

func newTypewriter(roles []string, seq int) typewriter {
	return typewriter{roles: roles, seq: seq}
}

// Text returns the currently typed prefix.
func (t typewriter) Text() string {
	if len(t.roles) == 0 {
		return ""
	}
	runes := []rune(t.roles[t.role])
	return string(runes[:min(t.shown, len(runes))])
}

// step advances one character and returns the delay before the next step.
func (t *typewriter) step() time.Duration {
	if len(t.roles) == 0 {
		return 0
	}
	full := len([]rune(t.roles[t.role]))
	if !t.deleting {
		if t.shown < full {
			t.shown++
		}
		if t.shown >= full {
			t.deleting = true
			return TypePause
		}
		return TypeInterval
	}
	if t.shown > 0 {
		t.shown--
		return TypeInterval / 2
	}
	t.deleting = false
	t.role = (t.role + 1) % len(t.roles)
	return TypeInterval
}

func (t typewriter) tick(d time.Duration) tea.Cmd {
	if len(t.roles) == 0 {
		return nil
	}
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{seq: seq} })
}
