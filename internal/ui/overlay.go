package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncate truncates a string to max cells with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	if max <= 1 {
		return ansi.Truncate(s, max, "")
	}
	return ansi.Truncate(s, max, "…")
}

// padRight pads rendered text with spaces to width cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// overlay draws box over base with its top-left corner at (x, y). Cells of
// base to the left of x are kept; everything right of x on the box's rows
// is replaced.
func overlay(base, box string, x, y int) string {
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	for i, bl := range boxLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(lines) {
			lines = append(lines, "")
		}
		left := padRight(ansi.Truncate(lines[row], x, ""), x)
		lines[row] = left + bl
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or cuts s to exactly n lines.
func fitLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
