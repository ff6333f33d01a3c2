// Package model holds the domain entities and the countdown arithmetic
// shared by every adapter.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTitle is used when a timer is created without a title.
const DefaultTitle = "Timer"

// MaxTitleLen is the longest title stored, in runes.
const MaxTitleLen = 255

// Status describes whether a timer is still counting down.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// Timer is a persisted countdown. Records are immutable after creation:
// there is no edit, delete, or expiry anywhere in the system.
type Timer struct {
	ID              int64
	StartTimestamp  int64 // unix seconds; countdown begins here
	DurationSeconds int64 // always > 0 for a persisted record
	CreatorIP       string
	CreatedAt       time.Time
	Title           string
}

// EndTimestamp returns the unix second at which the countdown reaches zero.
func (t Timer) EndTimestamp() int64 {
	return t.StartTimestamp + t.DurationSeconds
}

// RemainingAt returns the seconds left on the countdown at the given instant.
// The result is computed from absolute timestamps only, never from an
// accumulated counter, so repeated evaluation with the same now is stable
// and every viewer of the same timer computes the same value.
func (t Timer) RemainingAt(now time.Time) int64 {
	elapsed := now.Unix() - t.StartTimestamp
	remaining := t.DurationSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// StatusAt returns Running while any time remains, Completed otherwise.
func (t Timer) StatusAt(now time.Time) Status {
	if t.RemainingAt(now) > 0 {
		return StatusRunning
	}
	return StatusCompleted
}

// Snapshot is a point-in-time evaluation of a countdown.
type Snapshot struct {
	Remaining int64
	Status    Status
	Display   string // HH:MM:SS, 00:00:00 once completed
}

// Snapshot evaluates the countdown at the given instant.
func (t Timer) Snapshot(now time.Time) Snapshot {
	remaining := t.RemainingAt(now)
	status := StatusRunning
	if remaining == 0 {
		status = StatusCompleted
	}
	return Snapshot{
		Remaining: remaining,
		Status:    status,
		Display:   FormatCountdown(remaining),
	}
}

// FormatCountdown renders seconds as HH:MM:SS with two-digit zero-padded
// minutes and seconds. Hours are not wrapped at 24: a long timer renders
// its literal hour count (e.g. 120:00:00).
func FormatCountdown(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDuration renders a total-seconds duration as a short breakdown like
// "1d 2h 3m 4s". Zero-valued units are omitted, seconds are always omitted
// when days are present, and a zero duration renders as "0s".
func FormatDuration(total int64) string {
	if total <= 0 {
		return "0s"
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && days == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// NormalizeTitle trims the raw title, substitutes DefaultTitle when the
// result is empty, and truncates to MaxTitleLen runes.
func NormalizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return DefaultTitle
	}
	if runes := []rune(title); len(runes) > MaxTitleLen {
		title = string(runes[:MaxTitleLen])
	}
	return title
}
