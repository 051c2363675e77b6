package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/content"
)

// rect is a screen region in cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// navSlot is a clickable navigation label on the header's first row.
type navSlot struct {
	ID    content.SectionID
	Label string
	X     int
}

func (s navSlot) rect() rect {
	return rect{X: s.X, Y: progressRows, W: lipgloss.Width(s.Label), H: 1}
}

var shortLabels = map[content.SectionID]string{
	content.SectionEducation:      "Edu",
	content.SectionExperience:     "Exp",
	content.SectionCertifications: "Certs",
}

// isMobile reports whether width is below the navigation breakpoint.
func isMobile(width int) bool {
	return width < LayoutMobileWidth
}

// navLayout places the navigation labels after the logo. It uses short
// labels when the full ones would not leave room for the theme indicator.
// Mobile widths have no inline navigation.
func navLayout(width int, logo string) []navSlot {
	if isMobile(width) {
		return nil
	}
	start := 1 + lipgloss.Width(logo) + 3
	reserve := 10 // theme indicator

	place := func(short bool) ([]navSlot, bool) {
		x := start
		slots := make([]navSlot, 0, len(content.SectionIDs))
		for _, id := range content.SectionIDs {
			label := id.Title()
			if s, ok := shortLabels[id]; ok && short {
				label = s
			}
			slots = append(slots, navSlot{ID: id, Label: label, X: x})
			x += lipgloss.Width(label) + 2
		}
		return slots, x+reserve <= width
	}

	if slots, ok := place(false); ok {
		return slots
	}
	slots, _ := place(true)
	return slots
}

// menuToggleRect is the "menu" button on mobile widths.
func menuToggleRect(width int) rect {
	const label = len("[m] menu")
	return rect{X: max(width-label-1, 0), Y: progressRows, W: label, H: 1}
}

// menuRect is the open menu's box, anchored under the header on the right.
func menuRect(width int) rect {
	inner := 0
	for i, id := range content.SectionIDs {
		inner = max(inner, len(menuEntry(i, id)))
	}
	w := inner + 4 // border and padding
	h := len(content.SectionIDs) + 2
	return rect{X: max(width-w-1, 0), Y: progressRows + headerRows, W: w, H: h}
}

// menuItemAt maps a click inside the open menu to the entry index.
func menuItemAt(width, x, y int) (int, bool) {
	r := menuRect(width)
	if !r.contains(x, y) {
		return 0, false
	}
	idx := y - r.Y - 1
	if idx < 0 || idx >= len(content.SectionIDs) {
		return 0, false
	}
	return idx, true
}

func menuEntry(i int, id content.SectionID) string {
	return fmt.Sprintf("%d %s", i+1, id.Title())
}

// renderMenu draws the open menu box.
func (m Model) renderMenu() string {
	r := menuRect(m.width)
	lines := make([]string, 0, len(content.SectionIDs))
	for i, id := range content.SectionIDs {
		entry := menuEntry(i, id)
		entry += strings.Repeat(" ", max(r.W-4-len(entry), 0))
		if i == m.menuCursor {
			lines = append(lines, m.styles.Selected.Render(entry))
			continue
		}
		lines = append(lines, m.styles.Text.Render(entry))
	}
	return m.styles.MenuBox.Render(strings.Join(lines, "\n"))
}

// activeSection returns the section the viewport's top line falls in.
func activeSection(anchors map[content.SectionID]int, offset int) content.SectionID {
	active := content.SectionHome
	best := -1
	for _, id := range content.SectionIDs {
		line, ok := anchors[id]
		if !ok {
			continue
		}
		if line <= offset && line >= best {
			active = id
			best = line
		}
	}
	return active
}
