package web

import (
	"fmt"
	"time"

	"github.com/xsukax/sharetimer/internal/domain/model"
)

// Page is the state shared by every rendered page.
type Page struct {
	AppTitle string
	Message  string
	Error    bool
	Recent   []TimerItemView
}

// HomePage drives the create-form page.
type HomePage struct {
	Page
	Form FormView
}

// TimerPage drives the countdown view page.
type TimerPage struct {
	Page
	Timer TimerView
}

// FormView holds the create-form field values so a failed submission is
// re-rendered with what the visitor typed.
type FormView struct {
	Title   string
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// defaultForm returns the initial form state: a 5 minute timer.
func defaultForm() FormView {
	return FormView{Minutes: 5}
}

// TimerView is the countdown page's view of a timer. Display and Expired are
// the server-side snapshot so the page is meaningful before the client
// script takes over the per-second updates.
type TimerView struct {
	ID              int64
	Title           string
	StartTimestamp  int64
	DurationSeconds int64
	DurationText    string
	Display         string
	Expired         bool
	ShareURL        string
}

// TimerItemView is one row of the recent-timers list.
type TimerItemView struct {
	ID               int64
	Title            string
	URL              string
	CreatedTimestamp int64
	StartTimestamp   int64
	DurationSeconds  int64
	DurationText     string
	StatusText       string
	Completed        bool
}

func toTimerView(timer model.Timer) TimerView {
	snap := timer.Snapshot(time.Now())

	return TimerView{
		ID:              timer.ID,
		Title:           timer.Title,
		StartTimestamp:  timer.StartTimestamp,
		DurationSeconds: timer.DurationSeconds,
		DurationText:    model.FormatDuration(timer.DurationSeconds),
		Display:         snap.Display,
		Expired:         snap.Status == model.StatusCompleted,
		ShareURL:        fmt.Sprintf("/t/%d", timer.ID),
	}
}

func toTimerItemViews(timers []model.Timer) []TimerItemView {
	now := time.Now()

	items := make([]TimerItemView, 0, len(timers))
	for _, timer := range timers {
		snap := timer.Snapshot(now)

		statusText := "Completed"
		if snap.Status == model.StatusRunning {
			statusText = fmt.Sprintf("Running (%s left)", snap.Display)
		}

		items = append(items, TimerItemView{
			ID:               timer.ID,
			Title:            timer.Title,
			URL:              fmt.Sprintf("/t/%d", timer.ID),
			CreatedTimestamp: timer.CreatedAt.Unix(),
			StartTimestamp:   timer.StartTimestamp,
			DurationSeconds:  timer.DurationSeconds,
			DurationText:     model.FormatDuration(timer.DurationSeconds),
			StatusText:       statusText,
			Completed:        snap.Status == model.StatusCompleted,
		})
	}

	return items
}
