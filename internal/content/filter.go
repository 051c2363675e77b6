package content

import "strings"

// Filter narrows the projects section.
type Filter struct {
	Category ProjectCategory
	Query    string
}

// FilterProjects returns the projects matching f, in order. The query matches
// title, description, or any technology, ignoring case.
func FilterProjects(projects []Project, f Filter) []Project {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	var out []Project
	for _, p := range projects {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), query) {
			return true
		}
	}
	return false
}
