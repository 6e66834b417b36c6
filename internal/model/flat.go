package model

// FlatExperience is the single-position shape some templates lay out.
// It is an adapter view only; the canonical record keeps positions
// nested under the company.
type FlatExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// Flatten expands nested positions into one flat entry per position,
// preserving order. Flatten followed by Nest reconstructs the input as
// long as each company's positions were contiguous, which the editor
// guarantees.
func Flatten(exps []Experience) []FlatExperience {
	out := make([]FlatExperience, 0, len(exps))
	for _, e := range exps {
		for _, p := range e.Positions {
			out = append(out, FlatExperience{
				Company:      e.Company,
				Position:     p.Title,
				Duration:     p.Duration,
				Achievements: append([]string(nil), p.Achievements...),
			})
		}
	}
	return out
}

// Nest groups consecutive flat entries with the same company back into
// the canonical nested shape.
func Nest(flat []FlatExperience) []Experience {
	out := make([]Experience, 0, len(flat))
	for _, f := range flat {
		pos := Position{
			Title:        f.Position,
			Duration:     f.Duration,
			Achievements: append([]string(nil), f.Achievements...),
		}
		if n := len(out); n > 0 && out[n-1].Company == f.Company {
			out[n-1].Positions = append(out[n-1].Positions, pos)
			continue
		}
		out = append(out, Experience{Company: f.Company, Positions: []Position{pos}})
	}
	return out
}
