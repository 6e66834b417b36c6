package importer

import (
	"encoding/json"
	"strings"
	"unicode"

	"resume-builder/internal/model"
)

// Export serializes a record to the portable pretty-printed JSON form
// and returns it with a deterministic download filename. Blank list
// entries are filtered first: they are editing artifacts, never
// meaningful content.
func Export(rec *model.Resume) ([]byte, string) {
	out := rec.Clone()
	out.Normalize()

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		// A Resume is plain data; this cannot fail for real records.
		raw = []byte("{}")
	}
	return raw, ExportFilename(out.PersonalInfo.Name)
}

// ExportFilename derives "jane-okafor-resume.json" from "Jane Okafor",
// falling back to "resume.json" when the name is blank or yields no
// usable characters.
func ExportFilename(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "resume.json"
	}
	return slug + "-resume.json"
}
