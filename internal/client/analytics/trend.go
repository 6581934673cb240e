package analytics

import (
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// DailyRow holds the mood counts of one calendar day.
type DailyRow struct {
	Weekday string // short weekday name, e.g. "Mon"
	Date    string // local date key, YYYY-MM-DD
	Counts  map[models.Mood]int
}

// Total returns the number of entries counted in the row.
func (r DailyRow) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// DailyTrend returns one row per day of the weekly window, oldest first.
// Every known mood is present in each row, unknown moods are not counted.
func DailyTrend(entries []models.Entry, now time.Time) []DailyRow {
	loc := now.Location()
	w := WeekWindow(now)

	rows := make([]DailyRow, Days)
	byDate := make(map[string]int, Days)
	for i := range rows {
		day := w.Start.AddDate(0, 0, i)
		counts := make(map[models.Mood]int, len(models.Moods()))
		for _, d := range models.Moods() {
			counts[d.Value] = 0
		}
		rows[i] = DailyRow{Weekday: day.Format("Mon"), Date: DateKey(day, loc), Counts: counts}
		byDate[rows[i].Date] = i
	}

	for _, e := range InWindow(entries, w) {
		if !e.Mood.Known() {
			continue
		}
		t, _ := e.Created()
		if i, ok := byDate[DateKey(t, loc)]; ok {
			rows[i].Counts[e.Mood]++
		}
	}
	return rows
}
