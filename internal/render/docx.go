package render

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"resume-builder/internal/model"
)

// Word export emits one paragraph per logical content unit: a heading,
// a summary line, one bullet per achievement. Sizes are half-points,
// matching the on-screen hierarchy (16pt name, 14pt headings, 11pt
// body, 10pt bullets).

type docBuilder struct {
	doc *docx.Docx
}

func newDocBuilder() *docBuilder {
	return &docBuilder{doc: docx.New().WithDefaultTheme()}
}

func (b *docBuilder) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *docBuilder) centered(text string, size string, bold bool) {
	p := b.doc.AddParagraph().Justification("center")
	r := p.AddText(text).Size(size)
	if bold {
		r.Bold()
	}
}

func (b *docBuilder) heading(text string) {
	b.doc.AddParagraph().AddText(text).Size("28").Bold()
}

func (b *docBuilder) line(text string) {
	b.doc.AddParagraph().AddText(text).Size("22")
}

func (b *docBuilder) boldLine(text string) {
	b.doc.AddParagraph().AddText(text).Size("22").Bold()
}

func (b *docBuilder) positionLine(title, duration string) {
	p := b.doc.AddParagraph()
	p.AddText(title).Size("22").Bold()
	if duration != "" {
		p.AddText(" (" + duration + ")").Size("22")
	}
}

func (b *docBuilder) bullet(text string) {
	b.doc.AddParagraph().AddText("• " + text).Size("20")
}

func (b *docBuilder) blank() {
	b.doc.AddParagraph()
}

// Section emitters shared by the templates; each renderer composes them
// in its own order with its own labels.

func (b *docBuilder) header(p model.PersonalInfo) {
	b.centered(p.Name, "32", true)
	contact := make([]string, 0, 4)
	for _, part := range []string{p.Phone, p.Email, p.LinkedInURL, p.PortfolioWebsite} {
		if strings.TrimSpace(part) != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		b.centered(strings.Join(contact, " | "), "22", false)
	}
}

func (b *docBuilder) summarySection(p model.PersonalInfo) {
	b.heading("PROFILE SUMMARY")
	if p.Title != "" {
		b.line(p.Title)
	}
	if p.Summary != "" {
		b.line(p.Summary)
	}
}

func (b *docBuilder) nestedExperienceSection(exps []model.Experience) {
	if len(exps) == 0 {
		return
	}
	b.heading("EXPERIENCE")
	for _, exp := range exps {
		b.boldLine(exp.Company)
		for _, pos := range exp.Positions {
			b.positionLine(pos.Title, pos.Duration)
			for _, ach := range model.FilterEmpty(pos.Achievements) {
				b.bullet(ach)
			}
		}
	}
}

func (b *docBuilder) flatExperienceSection(exps []model.FlatExperience) {
	if len(exps) == 0 {
		return
	}
	b.heading("EXPERIENCE")
	for _, exp := range exps {
		b.boldLine(exp.Company)
		b.positionLine(exp.Position, exp.Duration)
		for _, ach := range model.FilterEmpty(exp.Achievements) {
			b.bullet(ach)
		}
	}
}

func (b *docBuilder) skillsSection(groups []skillGroup) {
	if len(groups) == 0 {
		return
	}
	b.heading("TECHNICAL SKILLS")
	for _, g := range groups {
		b.line(g.Label + ": " + strings.Join(g.Items, ", "))
	}
}

func (b *docBuilder) projectsSection(projects []model.Project) {
	if len(projects) == 0 {
		return
	}
	b.heading("PROJECTS")
	for _, p := range projects {
		name := p.Name
		if p.Link != "" {
			name += " (" + p.Link + ")"
		}
		b.boldLine(name)
		if p.Role != "" {
			b.line("Role: " + p.Role)
		}
		if p.Description != "" {
			b.line(p.Description)
		}
		if techs := model.FilterEmpty(p.Technologies); len(techs) > 0 {
			b.line("Technologies: " + strings.Join(techs, ", "))
		}
		if feats := model.FilterEmpty(p.Features); len(feats) > 0 {
			b.line("Features: " + strings.Join(feats, ", "))
		}
		b.blank()
	}
}

func (b *docBuilder) educationSection(edus []model.Education) {
	if len(edus) == 0 {
		return
	}
	b.heading("EDUCATION")
	for _, e := range edus {
		b.boldLine(e.Degree + " - " + e.Institution)
		extras := make([]string, 0, 3)
		if e.Year != "" {
			extras = append(extras, e.Year)
		}
		if e.Location != "" {
			extras = append(extras, e.Location)
		}
		if e.GPA != "" {
			extras = append(extras, "GPA: "+e.GPA)
		}
		if len(extras) > 0 {
			b.line(strings.Join(extras, " | "))
		}
	}
}

func (b *docBuilder) achievementsSection(achievements []string) {
	filtered := model.FilterEmpty(achievements)
	if len(filtered) == 0 {
		return
	}
	b.heading("ACHIEVEMENTS AND CERTIFICATES")
	for _, a := range filtered {
		b.bullet(a)
	}
}

func (b *docBuilder) interestsSection(interests []string) {
	filtered := model.FilterEmpty(interests)
	if len(filtered) == 0 {
		return
	}
	b.heading("INTERESTS")
	b.line(strings.Join(filtered, ", "))
}
