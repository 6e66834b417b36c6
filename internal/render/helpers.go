package render

import (
	"embed"
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"filterEmpty": model.FilterEmpty,
	"joinList":    joinList,
	"linkLabel":   linkLabel,
	"achTitle":    achievementTitle,
	"achDetail":   achievementDetail,
}).ParseFS(templateFS, "templates/*.html"))

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// joinList filters blanks before joining so blank entries can never
// produce leading, trailing, or doubled separators.
func joinList(xs []string) string {
	return strings.Join(model.FilterEmpty(xs), ", ")
}

// shortLabel reduces a URL to its registered domain for compact link
// display, e.g. "https://www.linkedin.com/in/jane" -> "linkedin.com".
func shortLabel(raw string) string {
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := u.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// linkLabel picks between the full URL and the short domain label.
func linkLabel(raw string, full bool) string {
	if full {
		return raw
	}
	return shortLabel(raw)
}

// skillGroup is one labelled category ready for display. Categories
// whose lists are empty after filtering are dropped before the template
// sees them.
type skillGroup struct {
	Label string
	Items []string
}

func skillGroups(groups ...skillGroup) []skillGroup {
	out := make([]skillGroup, 0, len(groups))
	for _, g := range groups {
		items := model.FilterEmpty(g.Items)
		if len(items) > 0 {
			out = append(out, skillGroup{Label: g.Label, Items: items})
		}
	}
	return out
}

// Achievement entries sometimes pack "Title | Issuer | Year" into one
// string. The split is defensive: with no delimiter the whole entry is
// the title and the detail falls back to a fixed caption.

func achievementTitle(s string) string {
	title, _, _ := strings.Cut(s, " | ")
	return title
}

func achievementDetail(s string) string {
	_, detail, ok := strings.Cut(s, " | ")
	if !ok || strings.TrimSpace(detail) == "" {
		return "Certificate details"
	}
	return detail
}
