package render

import "resume-builder/internal/model"

// Modern keeps positions nested under each company, shows the location
// line in the header, shortens links to their registered domain, and
// supports hiding the education section.
type Modern struct{}

func (Modern) Name() string { return "modern" }

type modernData struct {
	P            model.PersonalInfo
	Experience   []model.Experience
	Skills       []skillGroup
	Projects     []model.Project
	Education    []model.Education
	Achievements []string
	Interests    []string
	Opts         Options
}

func modernSkills(s model.Skills) []skillGroup {
	return skillGroups(
		skillGroup{Label: "Languages", Items: s.Languages},
		skillGroup{Label: "Frameworks & Libraries", Items: s.Frameworks},
		skillGroup{Label: "Tools & Platforms", Items: s.Tools},
		skillGroup{Label: "Databases", Items: s.Databases},
		skillGroup{Label: "Architectures & Methodologies", Items: append(append([]string(nil), s.Architectures...), s.Methodologies...)},
		skillGroup{Label: "Other", Items: s.Other},
	)
}

func (m Modern) Render(rec *model.Resume, opts Options) (string, error) {
	data := modernData{
		P:            rec.PersonalInfo,
		Experience:   rec.Experience,
		Skills:       modernSkills(rec.Skills),
		Projects:     rec.Projects,
		Achievements: model.FilterEmpty(rec.Achievements),
		Interests:    model.FilterEmpty(rec.Interests),
		Opts:         opts,
	}
	if !opts.HideEducation {
		data.Education = rec.Education
	}
	return execute("modern.html", data)
}

func (m Modern) RenderDocx(rec *model.Resume, opts Options) ([]byte, error) {
	b := newDocBuilder()
	b.header(rec.PersonalInfo)
	b.summarySection(rec.PersonalInfo)
	b.nestedExperienceSection(rec.Experience)
	b.skillsSection(modernSkills(rec.Skills))
	b.projectsSection(rec.Projects)
	if !opts.HideEducation {
		b.educationSection(rec.Education)
	}
	b.achievementsSection(rec.Achievements)
	b.interestsSection(rec.Interests)
	return b.bytes()
}
