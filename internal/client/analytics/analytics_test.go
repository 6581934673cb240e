package analytics

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, mood models.Mood, t time.Time) models.Entry {
	return models.Entry{ID: id, Mood: mood, CreatedAt: t.UTC().Format(time.RFC3339Nano)}
}

func TestWeekWindow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	now := time.Date(2025, 6, 15, 14, 20, 0, 0, loc)

	w := WeekWindow(now)

	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, now, w.End)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)))
}

func TestWeekWindow_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// DST started on 2025-03-09.
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)

	w := WeekWindow(now)
	assert.Equal(t, time.Date(2025, 3, 6, 0, 0, 0, 0, loc), w.Start)

	rows := DailyTrend([]models.Entry{
		entry("dst", models.MoodCalm, time.Date(2025, 3, 9, 1, 30, 0, 0, loc)),
		entry("after", models.MoodCalm, time.Date(2025, 3, 9, 23, 30, 0, 0, loc)),
	}, now)
	require.Len(t, rows, Days)
	assert.Equal(t, "2025-03-09", rows[3].Date)
	assert.Equal(t, 2, rows[3].Counts[models.MoodCalm])
}

func TestDateKey(t *testing.T) {
	utc := time.Date(2025, 1, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-05", DateKey(utc, time.UTC))
	assert.Equal(t, "2025-01-06", DateKey(utc, time.FixedZone("UTC+2", 2*3600)))
	assert.Equal(t, "2025-01-05", DateKey(utc, time.FixedZone("UTC-5", -5*3600)))
}

func TestDistribution(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	es := []models.Entry{
		entry("1", models.MoodCalm, now),
		entry("2", models.MoodHappy, now),
		entry("3", models.MoodHappy, now),
		entry("4", models.Mood("elated"), now),
		entry("5", models.MoodCalm, now),
		entry("6", models.MoodSad, now),
		entry("7", models.MoodHappy, now),
	}

	got := Distribution(es)

	require.Len(t, got, 4)
	assert.Equal(t, MoodCount{Mood: models.MoodHappy, Count: 3, Label: "Happy", Color: "#fbbf24"}, got[0])
	assert.Equal(t, models.MoodCalm, got[1].Mood)
	assert.Equal(t, 2, got[1].Count)
	// ties keep first-seen order
	assert.Equal(t, models.Mood("elated"), got[2].Mood)
	assert.Equal(t, "elated", got[2].Label)
	assert.Equal(t, models.FallbackColor, got[2].Color)
	assert.Equal(t, models.MoodSad, got[3].Mood)

	assert.Empty(t, Distribution(nil))
}

func TestBuild_WeeklySumMatchesWindow(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, loc)
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)

	es := []models.Entry{
		entry("start", models.MoodHappy, start),
		entry("before", models.MoodHappy, start.Add(-time.Second)),
		entry("mid", models.MoodAnxious, start.Add(50*time.Hour)),
		entry("now", models.MoodSad, now),
		entry("future", models.MoodSad, now.Add(time.Minute)),
		entry("unknown", models.Mood("meh"), now.Add(-time.Hour)),
		{ID: "broken", Mood: models.MoodCalm, CreatedAt: "garbage"},
	}

	r := Build(es, now)

	assert.Equal(t, 4, r.Total)
	sum := 0
	for _, c := range r.Distribution {
		require.Positive(t, c.Count)
		sum += c.Count
	}
	assert.Equal(t, r.Total, sum)

	require.Len(t, r.Daily, Days)
	dailySum := 0
	for _, row := range r.Daily {
		dailySum += row.Total()
	}
	// unknown moods appear in the distribution only
	assert.Equal(t, 3, dailySum)
}

func TestDailyTrend_Rows(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC) // Sunday
	es := []models.Entry{
		entry("a", models.MoodHappy, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)),
		entry("b", models.MoodHappy, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)),
		entry("c", models.MoodStressed, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)),
		entry("d", models.MoodNeutral, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)),
	}

	rows := DailyTrend(es, now)

	require.Len(t, rows, Days)
	assert.Equal(t, "Mon", rows[0].Weekday)
	assert.Equal(t, "2025-06-09", rows[0].Date)
	assert.Equal(t, "Sun", rows[6].Weekday)
	assert.Equal(t, "2025-06-15", rows[6].Date)

	for _, row := range rows {
		assert.Len(t, row.Counts, len(models.Moods()))
	}
	assert.Equal(t, 1, rows[0].Counts[models.MoodNeutral])
	assert.Equal(t, 2, rows[6].Counts[models.MoodHappy])
	assert.Equal(t, 1, rows[6].Counts[models.MoodStressed])
	assert.Equal(t, 3, rows[6].Total())
	for _, row := range rows[1:6] {
		assert.Zero(t, row.Total())
	}
}

func TestBuild_Scenario(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	es := []models.Entry{
		entry("now", models.MoodHappy, now),
		entry("1d", models.MoodCalm, now.AddDate(0, 0, -1)),
		entry("3d", models.MoodHappy, now.AddDate(0, 0, -3)),
		entry("10d", models.MoodSad, now.AddDate(0, 0, -10)),
	}

	r := Build(es, now)

	assert.Equal(t, 3, r.Total)
	require.Len(t, r.Distribution, 2)
	assert.Equal(t, models.MoodHappy, r.Distribution[0].Mood)
	assert.Equal(t, 2, r.Distribution[0].Count)
	assert.Equal(t, models.MoodCalm, r.Distribution[1].Mood)

	assert.Equal(t, 1, r.Daily[6].Total())
	assert.Equal(t, 1, r.Daily[5].Total())
	assert.Equal(t, 1, r.Daily[3].Total())
}

func TestBuild_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	es := []models.Entry{
		entry("a", models.MoodHappy, now.Add(-time.Hour)),
		entry("b", models.MoodCalm, now.Add(-30*time.Hour)),
		entry("c", models.MoodCalm, now.Add(-80*time.Hour)),
	}
	assert.Equal(t, Build(es, now), Build(es, now))
}

func TestLoad(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	failed := Load(nil, errors.New("boom"), now)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "Failed to load analytics", failed.Message())
	assert.Nil(t, failed.Report.Daily)

	empty := Load([]models.Entry{entry("old", models.MoodHappy, now.AddDate(0, 0, -30))}, nil, now)
	assert.Equal(t, StatusEmpty, empty.Status)
	assert.Equal(t, "No mood data recorded this week.", empty.Message())
	assert.True(t, empty.Report.Empty())

	ready := Load([]models.Entry{entry("new", models.MoodHappy, now)}, nil, now)
	assert.Equal(t, StatusReady, ready.Status)
	assert.Empty(t, ready.Message())
	assert.Equal(t, 1, ready.Report.Total)
}
