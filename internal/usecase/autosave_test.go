package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

type countingSaver struct {
	mu    sync.Mutex
	saves []*model.Resume
}

func (c *countingSaver) SaveRecord(_ context.Context, rec *model.Resume) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves = append(c.saves, rec)
}

func (c *countingSaver) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.saves)
}

func (c *countingSaver) last() *model.Resume {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.saves) == 0 {
		return nil
	}
	return c.saves[len(c.saves)-1]
}

func waitForCount(t *testing.T, saver *countingSaver, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if saver.count() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, want, saver.count())
}

func TestAutosaverDebouncesBurst(t *testing.T) {
	saver := &countingSaver{}
	a := NewAutosaver(saver, 60*time.Millisecond)
	defer a.Stop()

	rec := model.SampleResume()
	for i := 0; i < 5; i++ {
		a.Notify(rec)
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, saver.count(), "no save inside the window")

	waitForCount(t, saver, 1)

	// stays at one save after the burst settles
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 1, saver.count())
}

func TestAutosaverSavesLatestSnapshot(t *testing.T) {
	saver := &countingSaver{}
	a := NewAutosaver(saver, 40*time.Millisecond)
	defer a.Stop()

	first := model.SampleResume()
	second := model.SampleResume()
	second.PersonalInfo.Name = "SECOND DRAFT"

	a.Notify(first)
	a.Notify(second)
	waitForCount(t, saver, 1)
	assert.Equal(t, "SECOND DRAFT", saver.last().PersonalInfo.Name)
}

func TestAutosaverSkipsNamelessRecords(t *testing.T) {
	saver := &countingSaver{}
	a := NewAutosaver(saver, 20*time.Millisecond)
	defer a.Stop()

	blank := model.DefaultResume()
	a.Notify(blank)
	spaced := model.DefaultResume()
	spaced.PersonalInfo.Name = "   "
	a.Notify(spaced)

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, saver.count())
}

func TestAutosaverFlush(t *testing.T) {
	saver := &countingSaver{}
	a := NewAutosaver(saver, time.Hour)
	defer a.Stop()

	a.Notify(model.SampleResume())
	assert.Equal(t, 0, saver.count())

	a.Flush()
	assert.Equal(t, 1, saver.count())

	// nothing pending, flush is a no-op
	a.Flush()
	assert.Equal(t, 1, saver.count())
}

func TestAutosaverStopDiscardsPending(t *testing.T) {
	saver := &countingSaver{}
	a := NewAutosaver(saver, 20*time.Millisecond)

	a.Notify(model.SampleResume())
	a.Stop()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, saver.count())

	a.Notify(model.SampleResume())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, saver.count())
}
