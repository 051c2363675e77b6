package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/theme"
)

type glamourKey struct {
	width int
	mode  theme.Mode
}

type sectionKey struct {
	glamourKey
	markdown string
}

// pageRenderer renders portfolio sections with glamour. Sections are rendered
// on first use and cached per wrap width and theme mode, so a resize or a
// theme toggle only re-renders what is displayed next.
type pageRenderer struct {
	lg *lipgloss.Renderer

	mu        sync.Mutex
	renderers map[glamourKey]*glamour.TermRenderer
	sections  map[sectionKey]string
	misses    int
}

func newPageRenderer(lg *lipgloss.Renderer) *pageRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &pageRenderer{
		lg:        lg,
		renderers: make(map[glamourKey]*glamour.TermRenderer),
		sections:  make(map[sectionKey]string),
	}
}

// Page is the rendered body plus the line each section starts on.
type Page struct {
	Body    string
	Anchors map[content.SectionID]int
}

// Render renders every section of p for the given terminal width and mode.
func (pr *pageRenderer) Render(p *content.Portfolio, f content.Filter, width int, mode theme.Mode) Page {
	wrap := wrapWidth(width)
	page := Page{Anchors: make(map[content.SectionID]int, len(content.SectionIDs))}

	var b strings.Builder
	line := 0
	for _, sec := range content.Sections(p, f) {
		page.Anchors[sec.ID] = line
		rendered := pr.section(sec.Markdown, wrap, mode)
		b.WriteString(rendered)
		line += strings.Count(rendered, "\n")
	}
	b.WriteString(footer(p))
	page.Body = b.String()
	return page
}

func (pr *pageRenderer) section(markdown string, wrap int, mode theme.Mode) string {
	key := sectionKey{glamourKey: glamourKey{width: wrap, mode: mode}, markdown: markdown}

	pr.mu.Lock()
	defer pr.mu.Unlock()

	if out, ok := pr.sections[key]; ok {
		return out
	}
	pr.misses++

	out := markdown
	if tr, err := pr.termRenderer(key.glamourKey); err == nil {
		if rendered, err := tr.Render(markdown); err == nil {
			out = rendered
		}
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	pr.sections[key] = out
	return out
}

func (pr *pageRenderer) termRenderer(key glamourKey) (*glamour.TermRenderer, error) {
	if tr, ok := pr.renderers[key]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle(key.mode)),
		glamour.WithColorProfile(pr.lg.ColorProfile()),
		glamour.WithWordWrap(key.width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	pr.renderers[key] = tr
	return tr, nil
}

// cacheMisses reports how many sections were rendered rather than reused.
func (pr *pageRenderer) cacheMisses() int {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.misses
}

func wrapWidth(width int) int {
	w := min(width, LayoutMaxContentWidth) - 4
	return max(w, 20)
}

func footer(p *content.Portfolio) string {
	var links []string
	for _, l := range p.Contact.Links {
		links = append(links, l.Label)
	}
	line := fmt.Sprintf("  © %s", p.Profile.Name)
	if len(links) > 0 {
		line += " · " + strings.Join(links, " · ")
	}
	return "\n" + line + "\n"
}
