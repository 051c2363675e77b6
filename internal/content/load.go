package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded portfolio.
func Default() *Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded portfolio: %v", err))
	}
	return p
}

// Load reads and validates the portfolio at path. An empty path returns the
// embedded default.
func Load(path string) (*Portfolio, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into a Portfolio and validates it. Unknown keys are errors.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate reports every invalid field at once.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	for i, e := range p.Experience {
		switch e.Kind {
		case KindEducation, KindLearning, KindCertification, KindGoal:
		default:
			errs = append(errs, fmt.Errorf("experience[%d]: unknown kind %q", i, e.Kind))
		}
	}
	for i, g := range p.Skills {
		switch g.Category {
		case SkillFrontend, SkillBackend, SkillTools, SkillOther:
		default:
			errs = append(errs, fmt.Errorf("skills[%d]: unknown category %q", i, g.Category))
		}
		for j, s := range g.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skills[%d].skills[%d]: level %d out of range 0-100", i, j, s.Level))
			}
		}
	}
	seen := make(map[int]bool, len(p.Projects))
	for i, pr := range p.Projects {
		if pr.Category != CategoryAcademic && pr.Category != CategoryPersonal {
			errs = append(errs, fmt.Errorf("projects[%d]: unknown category %q", i, pr.Category))
		}
		if seen[pr.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %d", i, pr.ID))
		}
		seen[pr.ID] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}
