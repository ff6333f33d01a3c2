package model

import "time"

// Tracker observes a timer's countdown over repeated evaluations and
// guarantees the running-to-completed transition is reported exactly once,
// no matter how many times the countdown is re-evaluated afterwards.
type Tracker struct {
	timer    Timer
	notified bool
}

// NewTracker creates a Tracker for the given timer.
func NewTracker(timer Timer) *Tracker {
	return &Tracker{timer: timer}
}

// Observe evaluates the countdown at the given instant. completed is true
// only on the first observation at or past the deadline; subsequent calls
// return the same completed snapshot with completed false.
func (tr *Tracker) Observe(now time.Time) (snap Snapshot, completed bool) {
	snap = tr.timer.Snapshot(now)
	if snap.Status == StatusCompleted && !tr.notified {
		tr.notified = true
		return snap, true
	}
	return snap, false
}
