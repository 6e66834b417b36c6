package usecase

import (
	"fmt"
	"sync"

	"resume-builder/internal/model"
)

// Mode is the session's view state.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModePreview Mode = "preview"
)

// TemplateSource validates template names chosen for the session.
type TemplateSource interface {
	Names() []string
}

// Session is the edit/preview state machine. It starts in edit mode
// and only a successful submit moves it to preview; switching back to
// edit keeps the record so the form reopens pre-filled.
type Session struct {
	templates TemplateSource

	mu        sync.Mutex
	mode      Mode
	template  string
	committed *model.Resume
}

func NewSession(templates TemplateSource, defaultTemplate string) *Session {
	return &Session{
		templates: templates,
		mode:      ModeEdit,
		template:  defaultTemplate,
	}
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Committed returns the last successfully submitted record, nil before
// the first submit.
func (s *Session) Committed() *model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committed == nil {
		return nil
	}
	return s.committed.Clone()
}

// EnterPreview records a successful submit and switches to preview.
func (s *Session) EnterPreview(rec *model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = rec.Clone()
	s.mode = ModePreview
}

// EnterEdit switches back to the form. The committed record is kept.
func (s *Session) EnterEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeEdit
}

func (s *Session) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SelectTemplate switches the active template, rejecting names the
// registry does not know.
func (s *Session) SelectTemplate(name string) error {
	for _, known := range s.templates.Names() {
		if known == name {
			s.mu.Lock()
			s.template = name
			s.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("unknown template %q", name)
}
