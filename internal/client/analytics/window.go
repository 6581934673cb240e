// Package analytics derives the weekly mood distribution and the daily mood
// trend from a set of entries. Every function here is a pure function of its
// arguments; "local" always means the location of the supplied now.
package analytics

import (
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// Days is the number of calendar days covered by the weekly window.
const Days = 7

// Window is the closed interval [Start, End] analysed by the weekly views.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns the window that starts at local midnight six calendar
// days before now and ends at now.
func WeekWindow(now time.Time) Window {
	return Window{Start: startOfDay(now).AddDate(0, 0, -(Days - 1)), End: now}
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// InWindow returns the entries created inside w, in input order. Entries
// whose timestamp cannot be parsed are dropped.
func InWindow(entries []models.Entry, w Window) []models.Entry {
	var out []models.Entry
	for _, e := range entries {
		t, ok := e.Created()
		if ok && w.Contains(t) {
			out = append(out, e)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey formats the calendar date of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
