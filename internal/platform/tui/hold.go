package tui

import (
	"time"

	"github.com/vovakirdan/intruders/internal/core"
)

// HoldLatch turns key presses into held actions.
// Terminals report presses and auto-repeats but never releases, so a
// press keeps its action active until the hold window passes without
// another repeat.
type HoldLatch struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHoldLatch creates a latch with the given hold window.
func NewHoldLatch(hold time.Duration) *HoldLatch {
	return &HoldLatch{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press records a press of a held action at the given time.
func (l *HoldLatch) Press(a core.Action, at time.Time) {
	if !a.IsHeld() {
		return
	}
	l.until[a] = at.Add(l.hold)
}

// Release drops an action immediately.
func (l *HoldLatch) Release(a core.Action) {
	delete(l.until, a)
}

// Apply sets every action still held at the given time and forgets the
// expired ones.
func (l *HoldLatch) Apply(frame *core.InputFrame, at time.Time) {
	for a, until := range l.until {
		if at.Before(until) {
			frame.Set(a)
			continue
		}
		delete(l.until, a)
	}
}

// Held reports whether an action is held at the given time.
func (l *HoldLatch) Held(a core.Action, at time.Time) bool {
	until, ok := l.until[a]
	return ok && at.Before(until)
}

// Reset forgets every held action.
func (l *HoldLatch) Reset() {
	clear(l.until)
}
