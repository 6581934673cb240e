package analytics

import (
	"sort"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// MoodCount is one bar of the mood distribution chart.
type MoodCount struct {
	Mood  models.Mood
	Count int
	Label string
	Color string
}

// Distribution counts entries per mood value, most frequent first. Moods
// with equal counts keep the order in which they were first seen. Moods
// outside the known set are counted under their raw value with the
// fallback label and color.
func Distribution(entries []models.Entry) []MoodCount {
	index := make(map[models.Mood]int)
	var out []MoodCount

	for _, e := range entries {
		i, ok := index[e.Mood]
		if !ok {
			d := models.DescribeOrFallback(e.Mood)
			i = len(out)
			index[e.Mood] = i
			out = append(out, MoodCount{Mood: e.Mood, Label: d.Label, Color: d.Color})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
