package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/theme"
)

// RenderPage renders the whole portfolio once, for output that is not an
// interactive terminal.
func RenderPage(p *content.Portfolio, width int, mode theme.Mode, r *lipgloss.Renderer) string {
	if p == nil {
		p = content.Default()
	}
	if width <= 0 {
		width = LayoutMaxContentWidth
	}
	page := newPageRenderer(r).Render(p, content.Filter{Category: content.CategoryAll}, width, mode)
	return page.Body
}
