package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, []string{"certificate", "classic", "modern"}, reg.Names())

	for _, name := range reg.Names() {
		rd, err := reg.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, rd.Name())
	}

	_, err := reg.Get("brutalist")
	assert.ErrorContains(t, err, "unknown template")
}

func TestRenderDeterministic(t *testing.T) {
	rec := model.SampleResume()
	for _, name := range DefaultRegistry().Names() {
		t.Run(name, func(t *testing.T) {
			rd, err := DefaultRegistry().Get(name)
			require.NoError(t, err)

			first, err := rd.Render(rec, Options{})
			require.NoError(t, err)
			second, err := rd.Render(rec, Options{})
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Contains(t, first, rec.PersonalInfo.Name)
		})
	}
}

func TestRenderFiltersBlankEntries(t *testing.T) {
	rec := model.SampleResume()
	rec.Skills.Languages = []string{"Go", "", "  ", "TypeScript"}
	rec.Interests = []string{"", "Rock climbing", " "}

	for _, name := range DefaultRegistry().Names() {
		t.Run(name, func(t *testing.T) {
			rd, err := DefaultRegistry().Get(name)
			require.NoError(t, err)

			html, err := rd.Render(rec, Options{})
			require.NoError(t, err)
			assert.Contains(t, html, "Go, TypeScript")
			assert.NotContains(t, html, ", ,")
			assert.NotContains(t, html, ",  ")
			assert.Contains(t, html, "Rock climbing")
		})
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	rec := model.SampleResume()
	rec.Experience = nil
	rec.Projects = nil
	rec.Interests = []string{"", "  "}

	for _, name := range DefaultRegistry().Names() {
		t.Run(name, func(t *testing.T) {
			rd, err := DefaultRegistry().Get(name)
			require.NoError(t, err)

			html, err := rd.Render(rec, Options{})
			require.NoError(t, err)
			lower := strings.ToLower(html)
			assert.NotContains(t, lower, ">experience<")
			assert.NotContains(t, lower, ">projects<")
			assert.NotContains(t, lower, ">interests<")
		})
	}
}

func TestRenderOmitsAbsentOptionalFields(t *testing.T) {
	rec := model.SampleResume()
	rec.PersonalInfo.LinkedInURL = ""
	rec.PersonalInfo.PortfolioWebsite = ""

	for _, name := range DefaultRegistry().Names() {
		rd, err := DefaultRegistry().Get(name)
		require.NoError(t, err)

		html, err := rd.Render(rec, Options{})
		require.NoError(t, err)
		assert.NotContains(t, html, "LinkedIn")
		assert.NotContains(t, html, "href=\"\"")
	}
}

func TestRenderLinkLabels(t *testing.T) {
	rec := model.SampleResume()
	rec.PersonalInfo.PortfolioWebsite = "https://www.janeokafor.dev/work"

	rd, err := DefaultRegistry().Get("modern")
	require.NoError(t, err)

	short, err := rd.Render(rec, Options{})
	require.NoError(t, err)
	assert.Contains(t, short, ">janeokafor.dev<")

	full, err := rd.Render(rec, Options{FullLinks: true})
	require.NoError(t, err)
	assert.Contains(t, full, ">https://www.janeokafor.dev/work<")
}

func TestRenderHideEducation(t *testing.T) {
	rec := model.SampleResume()
	require.NotEmpty(t, rec.Education)
	institution := rec.Education[0].Institution

	for _, name := range []string{"modern", "certificate"} {
		rd, err := DefaultRegistry().Get(name)
		require.NoError(t, err)

		shown, err := rd.Render(rec, Options{})
		require.NoError(t, err)
		assert.Contains(t, shown, institution)

		hidden, err := rd.Render(rec, Options{HideEducation: true})
		require.NoError(t, err)
		assert.NotContains(t, hidden, institution)
	}
}

func TestCertificateSplitsAchievements(t *testing.T) {
	rec := model.SampleResume()
	rec.Achievements = []string{
		"AWS Solutions Architect | Amazon Web Services | 2023",
		"Mentored four junior engineers to promotion",
	}

	rd, err := DefaultRegistry().Get("certificate")
	require.NoError(t, err)

	html, err := rd.Render(rec, Options{})
	require.NoError(t, err)
	assert.Contains(t, html, "AWS Solutions Architect | CERTIFICATE")
	assert.Contains(t, html, "Amazon Web Services | 2023")
	assert.Contains(t, html, "Mentored four junior engineers to promotion | CERTIFICATE")
	assert.Contains(t, html, "Certificate details")
}

func TestAchievementSplit(t *testing.T) {
	assert.Equal(t, "A", achievementTitle("A | B | C"))
	assert.Equal(t, "B | C", achievementDetail("A | B | C"))
	assert.Equal(t, "No delimiter here", achievementTitle("No delimiter here"))
	assert.Equal(t, "Certificate details", achievementDetail("No delimiter here"))
	assert.Equal(t, "Certificate details", achievementDetail("Trailing |  "))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "linkedin.com", shortLabel("https://www.linkedin.com/in/jane"))
	assert.Equal(t, "janeokafor.dev", shortLabel("janeokafor.dev/work"))
	assert.Equal(t, "not a url at all", shortLabel("not a url at all"))
}

func TestRenderDocx(t *testing.T) {
	rec := model.SampleResume()
	for _, name := range DefaultRegistry().Names() {
		t.Run(name, func(t *testing.T) {
			rd, err := DefaultRegistry().Get(name)
			require.NoError(t, err)

			out, err := rd.RenderDocx(rec, Options{})
			require.NoError(t, err)
			require.Greater(t, len(out), 2)
			// docx files are zip containers
			assert.Equal(t, "PK", string(out[:2]))
		})
	}
}

func TestRenderDocxHideEducation(t *testing.T) {
	rec := model.SampleResume()
	rd, err := DefaultRegistry().Get("modern")
	require.NoError(t, err)

	shown, err := rd.RenderDocx(rec, Options{})
	require.NoError(t, err)
	hidden, err := rd.RenderDocx(rec, Options{HideEducation: true})
	require.NoError(t, err)
	assert.NotEqual(t, shown, hidden)
}
