package report

import (
	"time"

	"taskboard/internal/domain/ledger"
)

// Window is the inclusive calendar-date range scoping a report. Only
// the year/month/day of the bounds participate in comparisons.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Inverted() bool {
	return dateOf(w.Start).After(dateOf(w.End))
}

// Contains reports whether the calendar date of t falls inside the
// window.
func (w Window) Contains(t time.Time) bool {
	day := dateOf(t)
	return !day.Before(dateOf(w.Start)) && !day.After(dateOf(w.End))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Span returns the window covering the creation dates present in the
// snapshot, mirroring the date pickers defaulting to the ledger's full
// range. ok is false when no task carries a creation date.
func Span(tasks []ledger.Task) (Window, bool) {
	var w Window
	found := false
	for _, task := range tasks {
		if task.CreatedAt == nil {
			continue
		}
		created := *task.CreatedAt
		if !found {
			w = Window{Start: created, End: created}
			found = true
			continue
		}
		if created.Before(w.Start) {
			w.Start = created
		}
		if created.After(w.End) {
			w.End = created
		}
	}
	return w, found
}
