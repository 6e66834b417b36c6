package render

import "resume-builder/internal/model"

// Classic is the original single-column layout. It consumes the flat
// experience shape: one block per position, company repeated when
// someone held several roles at the same employer.
type Classic struct{}

func (Classic) Name() string { return "classic" }

type classicData struct {
	P            model.PersonalInfo
	Experience   []model.FlatExperience
	Skills       []skillGroup
	Projects     []model.Project
	Education    []model.Education
	Achievements []string
	Interests    []string
	Opts         Options
}

func classicSkills(s model.Skills) []skillGroup {
	return skillGroups(
		skillGroup{Label: "Languages", Items: s.Languages},
		skillGroup{Label: "Frameworks & Libraries", Items: s.Frameworks},
		skillGroup{Label: "Databases", Items: s.Databases},
		skillGroup{Label: "Architectures", Items: s.Architectures},
		skillGroup{Label: "Tools & Platforms", Items: s.Tools},
		skillGroup{Label: "Methodologies", Items: s.Methodologies},
		skillGroup{Label: "Other Skills", Items: s.Other},
	)
}

func (c Classic) Render(rec *model.Resume, opts Options) (string, error) {
	return execute("classic.html", classicData{
		P:            rec.PersonalInfo,
		Experience:   model.Flatten(rec.Experience),
		Skills:       classicSkills(rec.Skills),
		Projects:     rec.Projects,
		Education:    rec.Education,
		Achievements: model.FilterEmpty(rec.Achievements),
		Interests:    model.FilterEmpty(rec.Interests),
		Opts:         opts,
	})
}

func (c Classic) RenderDocx(rec *model.Resume, opts Options) ([]byte, error) {
	b := newDocBuilder()
	b.header(rec.PersonalInfo)
	b.summarySection(rec.PersonalInfo)
	b.flatExperienceSection(model.Flatten(rec.Experience))
	b.skillsSection(classicSkills(rec.Skills))
	b.projectsSection(rec.Projects)
	b.educationSection(rec.Education)
	b.achievementsSection(rec.Achievements)
	b.interestsSection(rec.Interests)
	return b.bytes()
}
