package content

// Portfolio is the whole page.
type Portfolio struct {
	Profile        Profile         `yaml:"profile"`
	Education      []Education     `yaml:"education"`
	Experience     []Experience    `yaml:"experience"`
	Certifications []Certification `yaml:"certifications"`
	Stats          []Stat          `yaml:"stats"`
	Skills         []SkillGroup    `yaml:"skills"`
	Projects       []Project       `yaml:"projects"`
	Contact        Contact         `yaml:"contact"`
}

// Profile is the hero and about content.
type Profile struct {
	Name     string   `yaml:"name"`
	Initials string   `yaml:"initials"`
	Headline string   `yaml:"headline"`
	Location string   `yaml:"location"`
	Summary  string   `yaml:"summary"`
	Roles    []string `yaml:"roles"`
	About    []string `yaml:"about"`
}

type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Location    string   `yaml:"location"`
	Period      string   `yaml:"period"`
	GPA         string   `yaml:"gpa,omitempty"`
	Details     []string `yaml:"details"`
}

// Experience is one timeline entry.
type Experience struct {
	Year         string         `yaml:"year"`
	Title        string         `yaml:"title"`
	Organization string         `yaml:"organization"`
	Kind         ExperienceKind `yaml:"kind"`
	Description  string         `yaml:"description"`
	Technologies []string       `yaml:"technologies,omitempty"`
}

// ExperienceKind classifies a timeline entry.
type ExperienceKind string

const (
	KindEducation     ExperienceKind = "education"
	KindLearning      ExperienceKind = "learning"
	KindCertification ExperienceKind = "certification"
	KindGoal          ExperienceKind = "goal"
)

type Certification struct {
	Title       string   `yaml:"title"`
	Issuer      string   `yaml:"issuer"`
	Date        string   `yaml:"date"`
	Credential  string   `yaml:"credential,omitempty"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

// Stat is a headline number shown under the certifications.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// SkillGroup is a titled list of skills sharing a category.
type SkillGroup struct {
	Title    string        `yaml:"title"`
	Category SkillCategory `yaml:"category"`
	Skills   []Skill       `yaml:"skills"`
}

// Skill is a named skill with an optional 1-100 proficiency. Zero means unrated.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level,omitempty"`
}

type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillTools    SkillCategory = "tools"
	SkillOther    SkillCategory = "other"
)

type Project struct {
	ID           int             `yaml:"id"`
	Title        string          `yaml:"title"`
	Category     ProjectCategory `yaml:"category"`
	Kind         string          `yaml:"kind"`
	Highlight    bool            `yaml:"highlight,omitempty"`
	Description  string          `yaml:"description"`
	Technologies []string        `yaml:"technologies"`
	GitHub       string          `yaml:"github,omitempty"`
	Demo         string          `yaml:"demo,omitempty"`
}

// ProjectCategory is academic or personal. CategoryAll is only a filter value.
type ProjectCategory string

const (
	CategoryAll      ProjectCategory = "all"
	CategoryAcademic ProjectCategory = "academic"
	CategoryPersonal ProjectCategory = "personal"
)

// Next cycles all -> academic -> personal -> all.
func (c ProjectCategory) Next() ProjectCategory {
	switch c {
	case CategoryAll, "":
		return CategoryAcademic
	case CategoryAcademic:
		return CategoryPersonal
	default:
		return CategoryAll
	}
}

type Contact struct {
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
	Links    []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}
