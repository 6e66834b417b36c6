// Package usecase carries the editing session logic: the working
// record, the debounced autosaver, and the edit/preview state machine.
package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"resume-builder/internal/model"
)

// Editor owns the working record. All edits go through it so the
// autosaver sees every change, and Submit is the only path that turns
// the working record into a committed one.
type Editor struct {
	mu      sync.Mutex
	working *model.Resume

	// onChange fires after every successful mutation, with a snapshot
	// of the working record.
	onChange func(*model.Resume)
}

func NewEditor() *Editor {
	return &Editor{working: model.DefaultResume()}
}

// OnChange registers the change listener. The listener receives a
// deep copy and may retain it.
func (e *Editor) OnChange(fn func(*model.Resume)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Record returns a snapshot of the working record.
func (e *Editor) Record() *model.Resume {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.working.Clone()
}

// Replace swaps in a whole record, as after an import or a load from
// storage. It is never a merge.
func (e *Editor) Replace(rec *model.Resume) {
	e.mu.Lock()
	e.working = rec.Clone()
	e.mu.Unlock()
	e.notify()
}

// LoadSample replaces the working record with the demo record.
func (e *Editor) LoadSample() {
	e.Replace(model.SampleResume())
}

// Update applies an arbitrary mutation to the working record under the
// editor's lock and notifies the change listener.
func (e *Editor) Update(mutate func(*model.Resume)) {
	e.mu.Lock()
	mutate(e.working)
	e.mu.Unlock()
	e.notify()
}

// Insert appends an empty element to the list named by fieldPath.
// Paths use the same dotted names as validation errors:
// "experience", "experience.0.positions",
// "experience.0.positions.1.achievements", "skills.languages",
// "education", "projects", "projects.1.technologies", "achievements",
// "interests".
func (e *Editor) Insert(fieldPath string) error {
	e.mu.Lock()
	h, err := e.listAt(fieldPath)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	h.insert()
	e.mu.Unlock()
	e.notify()
	return nil
}

// RemoveAt removes the element at index from the list named by
// fieldPath. Lists never drop below one element: removing the last
// entry is a no-op, not an error.
func (e *Editor) RemoveAt(fieldPath string, index int) error {
	e.mu.Lock()
	h, err := e.listAt(fieldPath)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if h.length() <= 1 || index < 0 || index >= h.length() {
		e.mu.Unlock()
		return nil
	}
	h.removeAt(index)
	e.mu.Unlock()
	e.notify()
	return nil
}

// Errors runs validation on the current working record and returns the
// live field error list. A nil slice means the record is valid.
func (e *Editor) Errors() []model.FieldError {
	rec := e.Record()
	if err := model.ValidateResume(rec); err != nil {
		if verr, ok := err.(*model.ValidationError); ok {
			return verr.Fields
		}
		return []model.FieldError{{Path: "", Message: err.Error()}}
	}
	return nil
}

// Submit validates the working record. On failure the error is
// returned and the working record is untouched. On success the
// normalized record becomes the committed snapshot and is returned.
func (e *Editor) Submit() (*model.Resume, error) {
	e.mu.Lock()
	candidate := e.working.Clone()
	e.mu.Unlock()

	candidate.Normalize()
	if err := model.ValidateResume(candidate); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.working = candidate.Clone()
	e.mu.Unlock()
	e.notify()
	return candidate, nil
}

func (e *Editor) notify() {
	e.mu.Lock()
	fn := e.onChange
	var snap *model.Resume
	if fn != nil {
		snap = e.working.Clone()
	}
	e.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// listHandle is a view over one mutable list field.
type listHandle struct {
	length   func() int
	insert   func()
	removeAt func(i int)
}

func stringList(xs *[]string) listHandle {
	return listHandle{
		length:   func() int { return len(*xs) },
		insert:   func() { *xs = append(*xs, "") },
		removeAt: func(i int) { *xs = append((*xs)[:i], (*xs)[i+1:]...) },
	}
}

// listAt resolves a dotted field path to the list it names. Caller
// holds the editor lock.
func (e *Editor) listAt(path string) (listHandle, error) {
	r := e.working
	seg := strings.Split(path, ".")
	bad := func() (listHandle, error) {
		return listHandle{}, fmt.Errorf("no list field at %q", path)
	}

	switch seg[0] {
	case "experience":
		if len(seg) == 1 {
			return listHandle{
				length: func() int { return len(r.Experience) },
				insert: func() {
					r.Experience = append(r.Experience, model.Experience{
						Positions: []model.Position{{Achievements: []string{""}}},
					})
				},
				removeAt: func(i int) { r.Experience = append(r.Experience[:i], r.Experience[i+1:]...) },
			}, nil
		}
		i, err := listIndex(seg[1], len(r.Experience))
		if err != nil || len(seg) < 3 || seg[2] != "positions" {
			return bad()
		}
		exp := &r.Experience[i]
		if len(seg) == 3 {
			return listHandle{
				length: func() int { return len(exp.Positions) },
				insert: func() {
					exp.Positions = append(exp.Positions, model.Position{Achievements: []string{""}})
				},
				removeAt: func(j int) { exp.Positions = append(exp.Positions[:j], exp.Positions[j+1:]...) },
			}, nil
		}
		j, err := listIndex(seg[3], len(exp.Positions))
		if err != nil || len(seg) != 5 || seg[4] != "achievements" {
			return bad()
		}
		return stringList(&exp.Positions[j].Achievements), nil

	case "skills":
		if len(seg) != 2 {
			return bad()
		}
		switch seg[1] {
		case "languages":
			return stringList(&r.Skills.Languages), nil
		case "frameworks":
			return stringList(&r.Skills.Frameworks), nil
		case "databases":
			return stringList(&r.Skills.Databases), nil
		case "architectures":
			return stringList(&r.Skills.Architectures), nil
		case "tools":
			return stringList(&r.Skills.Tools), nil
		case "methodologies":
			return stringList(&r.Skills.Methodologies), nil
		case "other":
			return stringList(&r.Skills.Other), nil
		}
		return bad()

	case "education":
		if len(seg) != 1 {
			return bad()
		}
		return listHandle{
			length:   func() int { return len(r.Education) },
			insert:   func() { r.Education = append(r.Education, model.Education{}) },
			removeAt: func(i int) { r.Education = append(r.Education[:i], r.Education[i+1:]...) },
		}, nil

	case "projects":
		if len(seg) == 1 {
			return listHandle{
				length: func() int { return len(r.Projects) },
				insert: func() {
					r.Projects = append(r.Projects, model.Project{
						Technologies: []string{""},
						Features:     []string{""},
					})
				},
				removeAt: func(i int) { r.Projects = append(r.Projects[:i], r.Projects[i+1:]...) },
			}, nil
		}
		i, err := listIndex(seg[1], len(r.Projects))
		if err != nil || len(seg) != 3 {
			return bad()
		}
		switch seg[2] {
		case "technologies":
			return stringList(&r.Projects[i].Technologies), nil
		case "features":
			return stringList(&r.Projects[i].Features), nil
		}
		return bad()

	case "achievements":
		if len(seg) != 1 {
			return bad()
		}
		return stringList(&r.Achievements), nil

	case "interests":
		if len(seg) != 1 {
			return bad()
		}
		return stringList(&r.Interests), nil
	}
	return bad()
}

func listIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range", i)
	}
	return i, nil
}
