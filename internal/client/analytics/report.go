package analytics

import (
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// Report is the weekly summary shown by the insights view.
type Report struct {
	Window       Window
	Distribution []MoodCount
	Daily        []DailyRow
	Total        int
}

// Empty reports whether no entries fall inside the window.
func (r Report) Empty() bool {
	return r.Total == 0
}

// Build computes the weekly report for entries as of now.
func Build(entries []models.Entry, now time.Time) Report {
	w := WeekWindow(now)
	inWindow := InWindow(entries, w)
	return Report{
		Window:       w,
		Distribution: Distribution(inWindow),
		Daily:        DailyTrend(inWindow, now),
		Total:        len(inWindow),
	}
}

// Status is the load state of the insights view.
type Status int

const (
	StatusReady Status = iota
	StatusEmpty
	StatusFailed
)

const (
	MessageFailed = "Failed to load analytics"
	MessageEmpty  = "No mood data recorded this week."
)

// View is what the insights view renders: a status and, when ready, the
// report.
type View struct {
	Status Status
	Report Report
	Err    error
}

// Message returns the user-facing text for the failed and empty states.
func (v View) Message() string {
	switch v.Status {
	case StatusFailed:
		return MessageFailed
	case StatusEmpty:
		return MessageEmpty
	}
	return ""
}

// Load turns the outcome of an entries fetch into a View. A fetch error
// yields StatusFailed without a report.
func Load(entries []models.Entry, fetchErr error, now time.Time) View {
	if fetchErr != nil {
		return View{Status: StatusFailed, Err: fetchErr}
	}
	r := Build(entries, now)
	if r.Empty() {
		return View{Status: StatusEmpty, Report: r}
	}
	return View{Status: StatusReady, Report: r}
}
