package content

import (
	"fmt"
	"strings"
)

// SectionID names a page section. The order of Sections is the page order.
type SectionID string

const (
	SectionHome           SectionID = "home"
	SectionAbout          SectionID = "about"
	SectionEducation      SectionID = "education"
	SectionExperience     SectionID = "experience"
	SectionCertifications SectionID = "certifications"
	SectionSkills         SectionID = "skills"
	SectionProjects       SectionID = "projects"
	SectionContact        SectionID = "contact"
)

// SectionIDs lists every section in page order.
var SectionIDs = []SectionID{
	SectionHome,
	SectionAbout,
	SectionEducation,
	SectionExperience,
	SectionCertifications,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

// Title returns the navigation label.
func (id SectionID) Title() string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(string(id[:1])) + string(id[1:])
}

// Section is one page section rendered to markdown.
type Section struct {
	ID       SectionID
	Markdown string
}

// Sections renders every section of p in page order.
func Sections(p *Portfolio, f Filter) []Section {
	out := make([]Section, 0, len(SectionIDs))
	for _, id := range SectionIDs {
		out = append(out, Section{ID: id, Markdown: Markdown(p, id, f)})
	}
	return out
}

// Markdown renders the single section id.
func Markdown(p *Portfolio, id SectionID, f Filter) string {
	var b strings.Builder
	switch id {
	case SectionHome:
		writeHome(&b, p)
	case SectionAbout:
		writeAbout(&b, p)
	case SectionEducation:
		writeEducation(&b, p)
	case SectionExperience:
		writeExperience(&b, p)
	case SectionCertifications:
		writeCertifications(&b, p)
	case SectionSkills:
		writeSkills(&b, p)
	case SectionProjects:
		writeProjects(&b, p, f)
	case SectionContact:
		writeContact(&b, p)
	}
	return b.String()
}

func writeHome(b *strings.Builder, p *Portfolio) {
	fmt.Fprintf(b, "# %s\n\n", p.Profile.Name)
	if p.Profile.Headline != "" {
		fmt.Fprintf(b, "**%s**\n\n", p.Profile.Headline)
	}
	if p.Profile.Summary != "" {
		fmt.Fprintf(b, "%s\n\n", p.Profile.Summary)
	}
	b.WriteString("Press `7` for projects or `c` to get in touch.\n")
}

func writeAbout(b *strings.Builder, p *Portfolio) {
	b.WriteString("## About Me\n\n")
	for _, para := range p.Profile.About {
		fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(para))
	}
}

func writeEducation(b *strings.Builder, p *Portfolio) {
	b.WriteString("## Education\n\n")
	for _, e := range p.Education {
		fmt.Fprintf(b, "### %s\n\n", e.Degree)
		fmt.Fprintf(b, "%s  \n", e.Institution)
		meta := []string{e.Location, e.Period}
		if e.GPA != "" {
			meta = append(meta, "GPA "+e.GPA)
		}
		fmt.Fprintf(b, "*%s*\n\n", joinNonEmpty(meta, " · "))
		for _, d := range e.Details {
			fmt.Fprintf(b, "- %s\n", d)
		}
		b.WriteString("\n")
	}
}

func writeExperience(b *strings.Builder, p *Portfolio) {
	b.WriteString("## My Journey\n\n")
	for _, e := range p.Experience {
		fmt.Fprintf(b, "### %s · %s\n\n", e.Year, e.Title)
		fmt.Fprintf(b, "*%s* `%s`\n\n", e.Organization, e.Kind)
		fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(e.Description))
		if len(e.Technologies) > 0 {
			fmt.Fprintf(b, "%s\n\n", codeList(e.Technologies))
		}
	}
}

func writeCertifications(b *strings.Builder, p *Portfolio) {
	b.WriteString("## Certifications & Coursework\n\n")
	for _, c := range p.Certifications {
		fmt.Fprintf(b, "### %s\n\n", c.Title)
		fmt.Fprintf(b, "*%s* · %s\n\n", c.Issuer, c.Date)
		if c.Description != "" {
			fmt.Fprintf(b, "%s\n\n", c.Description)
		}
		if c.Credential != "" {
			fmt.Fprintf(b, "Credential: %s\n\n", c.Credential)
		}
		if len(c.Skills) > 0 {
			fmt.Fprintf(b, "%s\n\n", codeList(c.Skills))
		}
	}
	if len(p.Stats) > 0 {
		b.WriteString("| | |\n|---|---|\n")
		for _, s := range p.Stats {
			fmt.Fprintf(b, "| %s | **%s** |\n", s.Label, s.Value)
		}
		b.WriteString("\n")
	}
}

func writeSkills(b *strings.Builder, p *Portfolio) {
	b.WriteString("## Technical Skills\n\n")
	for _, g := range p.Skills {
		fmt.Fprintf(b, "### %s\n\n", g.Title)
		for _, s := range g.Skills {
			if s.Level > 0 {
				fmt.Fprintf(b, "- %s `%s` %d%%\n", s.Name, levelBar(s.Level), s.Level)
				continue
			}
			fmt.Fprintf(b, "- %s\n", s.Name)
		}
		b.WriteString("\n")
	}
}

func writeProjects(b *strings.Builder, p *Portfolio, f Filter) {
	b.WriteString("## My Projects\n\n")
	category := f.Category
	if category == "" {
		category = CategoryAll
	}
	filterLine := fmt.Sprintf("Filter: **%s**", category)
	if q := strings.TrimSpace(f.Query); q != "" {
		filterLine += fmt.Sprintf(" · search: \"%s\"", q)
	}
	fmt.Fprintf(b, "%s\n\n", filterLine)

	projects := FilterProjects(p.Projects, f)
	plural := "s"
	if len(projects) == 1 {
		plural = ""
	}
	fmt.Fprintf(b, "Showing %d project%s\n\n", len(projects), plural)
	if len(projects) == 0 {
		b.WriteString("*No projects found matching your criteria.*\n\n")
		return
	}
	for _, pr := range projects {
		title := pr.Title
		if pr.Highlight {
			title += " ★"
		}
		fmt.Fprintf(b, "### %s\n\n", title)
		fmt.Fprintf(b, "*%s* · %s\n\n", pr.Kind, pr.Category)
		fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(pr.Description))
		if len(pr.Technologies) > 0 {
			fmt.Fprintf(b, "%s\n\n", codeList(pr.Technologies))
		}
		if pr.GitHub != "" {
			fmt.Fprintf(b, "GitHub: %s\n\n", pr.GitHub)
		}
		if pr.Demo != "" {
			fmt.Fprintf(b, "Demo: %s\n\n", pr.Demo)
		}
	}
}

func writeContact(b *strings.Builder, p *Portfolio) {
	b.WriteString("## Get In Touch\n\n")
	if p.Contact.Email != "" {
		fmt.Fprintf(b, "- Email: %s\n", p.Contact.Email)
	}
	for _, l := range p.Contact.Links {
		fmt.Fprintf(b, "- %s: %s\n", l.Label, l.URL)
	}
	if p.Contact.Location != "" {
		fmt.Fprintf(b, "- Location: %s\n", p.Contact.Location)
	}
	b.WriteString("\nPress `c` to send a message.\n")
}

func codeList(items []string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = "`" + it + "`"
	}
	return strings.Join(parts, " ")
}

func levelBar(level int) string {
	const width = 10
	filled := (level*width + 50) / 100
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func joinNonEmpty(parts []string, sep string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
