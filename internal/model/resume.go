package model

import "strings"

// Canonical resume record. Every consumer (editor, storage, importer,
// renderers) works against this shape; alternate shapes are adapters.

type PersonalInfo struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Summary          string `json:"summary"`
	PortfolioWebsite string `json:"portfolioWebsite,omitempty"`
	LinkedInURL      string `json:"linkedInUrl,omitempty"`
	Location         string `json:"location,omitempty"`
}

// Position is one role held at a company. A company with a single role
// still carries exactly one position.
type Position struct {
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

type Experience struct {
	Company   string     `json:"company"`
	Positions []Position `json:"positions"`
}

// Skills holds the fixed category set. Categories are always present;
// individual lists may be empty.
type Skills struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	Databases     []string `json:"databases"`
	Architectures []string `json:"architectures"`
	Tools         []string `json:"tools"`
	Methodologies []string `json:"methodologies"`
	Other         []string `json:"other"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Year           string `json:"year"`
	Location       string `json:"location,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	GraduationDate string `json:"graduationDate,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Link         string   `json:"link,omitempty"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	Duration     string   `json:"duration,omitempty"`
}

type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Skills       Skills       `json:"skills"`
	Education    []Education  `json:"education"`
	Projects     []Project    `json:"projects"`
	Achievements []string     `json:"achievements"`
	Interests    []string     `json:"interests"`
}

// FilterEmpty drops blank and whitespace-only entries. Idempotent; the
// result is never nil so templates can range over it safely.
func FilterEmpty(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if strings.TrimSpace(x) != "" {
			out = append(out, x)
		}
	}
	return out
}

// Normalize strips blank entries from every list field in place. Run
// before export so placeholder entries left by the editor never leak
// into serialized documents.
func (r *Resume) Normalize() {
	for i := range r.Experience {
		for j := range r.Experience[i].Positions {
			r.Experience[i].Positions[j].Achievements = FilterEmpty(r.Experience[i].Positions[j].Achievements)
		}
	}
	r.Skills.Languages = FilterEmpty(r.Skills.Languages)
	r.Skills.Frameworks = FilterEmpty(r.Skills.Frameworks)
	r.Skills.Databases = FilterEmpty(r.Skills.Databases)
	r.Skills.Architectures = FilterEmpty(r.Skills.Architectures)
	r.Skills.Tools = FilterEmpty(r.Skills.Tools)
	r.Skills.Methodologies = FilterEmpty(r.Skills.Methodologies)
	r.Skills.Other = FilterEmpty(r.Skills.Other)
	for i := range r.Projects {
		r.Projects[i].Technologies = FilterEmpty(r.Projects[i].Technologies)
		r.Projects[i].Features = FilterEmpty(r.Projects[i].Features)
	}
	r.Achievements = FilterEmpty(r.Achievements)
	r.Interests = FilterEmpty(r.Interests)
}

// Clone returns a deep copy. The editor hands copies across the
// edit/preview boundary so a committed record is never mutated through
// a retained reference.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		ce := e
		ce.Positions = make([]Position, len(e.Positions))
		for j, p := range e.Positions {
			cp := p
			cp.Achievements = append([]string(nil), p.Achievements...)
			ce.Positions[j] = cp
		}
		out.Experience[i] = ce
	}
	out.Skills.Languages = append([]string(nil), r.Skills.Languages...)
	out.Skills.Frameworks = append([]string(nil), r.Skills.Frameworks...)
	out.Skills.Databases = append([]string(nil), r.Skills.Databases...)
	out.Skills.Architectures = append([]string(nil), r.Skills.Architectures...)
	out.Skills.Tools = append([]string(nil), r.Skills.Tools...)
	out.Skills.Methodologies = append([]string(nil), r.Skills.Methodologies...)
	out.Skills.Other = append([]string(nil), r.Skills.Other...)
	out.Education = append([]Education(nil), r.Education...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		cp := p
		cp.Technologies = append([]string(nil), p.Technologies...)
		cp.Features = append([]string(nil), p.Features...)
		out.Projects[i] = cp
	}
	out.Achievements = append([]string(nil), r.Achievements...)
	out.Interests = append([]string(nil), r.Interests...)
	return &out
}
