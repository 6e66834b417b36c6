package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"resume-builder/internal/model"
)

// RecordSaver is the persistence sink for autosaved records.
type RecordSaver interface {
	SaveRecord(ctx context.Context, rec *model.Resume)
}

// DefaultAutosaveWindow is the quiescence window an edit burst must
// outlast before a write happens.
const DefaultAutosaveWindow = 2 * time.Second

// Autosaver debounces writes with a timer reset: every Notify cancels
// the pending timer and arms a new one, so a burst of edits produces
// exactly one save once the burst has been quiet for the full window.
// Records without a name are never written.
type Autosaver struct {
	saver  RecordSaver
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.Resume
	stopped bool
}

func NewAutosaver(saver RecordSaver, window time.Duration) *Autosaver {
	if window <= 0 {
		window = DefaultAutosaveWindow
	}
	return &Autosaver{saver: saver, window: window}
}

// Notify registers an edit. The record is retained as the pending
// snapshot and written only if no further edit arrives within the
// window.
func (a *Autosaver) Notify(rec *model.Resume) {
	if strings.TrimSpace(rec.PersonalInfo.Name) == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.pending = rec
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.window, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	rec := a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()
	if rec == nil {
		return
	}
	a.saver.SaveRecord(context.Background(), rec)
	slog.Debug("autosaved record")
}

// Flush writes any pending snapshot immediately. Used on shutdown so
// the last edits are not lost to the window.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.fire()
}

// Stop discards any pending snapshot and disables further saves.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
}
