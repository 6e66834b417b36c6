// Package render turns a canonical resume record into one of several
// visual layouts, each with matching print styling and a Word export.
package render

import (
	"fmt"
	"sort"

	"resume-builder/internal/model"
)

// Options are the per-template display toggles. The zero value is the
// default presentation: short link labels, education shown.
type Options struct {
	// FullLinks renders URLs verbatim instead of short labels.
	FullLinks bool
	// HideEducation drops the education section on templates that
	// support the toggle.
	HideEducation bool
}

// Renderer is a pure function from record to document: the same record
// and options always produce the same bytes. Implementations must
// filter blank list entries before display and omit absent optional
// fields entirely.
type Renderer interface {
	Name() string
	Render(rec *model.Resume, opts Options) (string, error)
	RenderDocx(rec *model.Resume, opts Options) ([]byte, error)
}

// Registry maps template names to renderers.
type Registry struct {
	byName map[string]Renderer
}

func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{byName: make(map[string]Renderer, len(renderers))}
	for _, rd := range renderers {
		r.byName[rd.Name()] = rd
	}
	return r
}

// DefaultRegistry holds every built-in template.
func DefaultRegistry() *Registry {
	return NewRegistry(Classic{}, Modern{}, Certificate{})
}

func (r *Registry) Get(name string) (Renderer, error) {
	rd, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	return rd, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
