package render

import "resume-builder/internal/model"

// Certificate puts certifications front and center: each achievement
// entry is rendered as a card, splitting "Title | Issuer | Year"
// strings into a title row and a detail row. Uses a reduced skill
// label set and the flat experience shape.
type Certificate struct{}

func (Certificate) Name() string { return "certificate" }

type certificateData struct {
	P            model.PersonalInfo
	Experience   []model.FlatExperience
	Skills       []skillGroup
	Projects     []model.Project
	Education    []model.Education
	Achievements []string
	Interests    []string
	Opts         Options
}

func certificateSkills(s model.Skills) []skillGroup {
	return skillGroups(
		skillGroup{Label: "Languages", Items: s.Languages},
		skillGroup{Label: "Frameworks", Items: s.Frameworks},
		skillGroup{Label: "Tools", Items: s.Tools},
		skillGroup{Label: "Databases", Items: s.Databases},
		skillGroup{Label: "Other", Items: s.Other},
	)
}

func (c Certificate) Render(rec *model.Resume, opts Options) (string, error) {
	data := certificateData{
		P:            rec.PersonalInfo,
		Experience:   model.Flatten(rec.Experience),
		Skills:       certificateSkills(rec.Skills),
		Projects:     rec.Projects,
		Achievements: model.FilterEmpty(rec.Achievements),
		Interests:    model.FilterEmpty(rec.Interests),
		Opts:         opts,
	}
	if !opts.HideEducation {
		data.Education = rec.Education
	}
	return execute("certificate.html", data)
}

func (c Certificate) RenderDocx(rec *model.Resume, opts Options) ([]byte, error) {
	b := newDocBuilder()
	b.header(rec.PersonalInfo)
	b.summarySection(rec.PersonalInfo)
	b.flatExperienceSection(model.Flatten(rec.Experience))
	b.skillsSection(certificateSkills(rec.Skills))
	b.projectsSection(rec.Projects)
	if !opts.HideEducation {
		b.educationSection(rec.Education)
	}
	// Certificates keep their two-part card shape in Word as well.
	if certs := model.FilterEmpty(rec.Achievements); len(certs) > 0 {
		b.heading("CERTIFICATES")
		for _, cert := range certs {
			b.boldLine(achievementTitle(cert) + " | CERTIFICATE")
			b.bullet(achievementDetail(cert))
		}
	}
	b.interestsSection(rec.Interests)
	return b.bytes()
}
