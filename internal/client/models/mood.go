package models

import (
	"errors"
	"strconv"
	"strings"
)

// Mood is one of the fixed moods a journal entry can carry. Values that the
// API returns outside the fixed set are kept verbatim.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodNeutral  Mood = "neutral"
	MoodAnxious  Mood = "anxious"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// FallbackColor is used for moods that have no descriptor.
const FallbackColor = "#cbd5e1"

var (
	ErrMoodRequired = errors.New("mood is required")
	ErrUnknownMood  = errors.New("unknown mood")
)

// MoodDescriptor holds the display data of a mood.
type MoodDescriptor struct {
	Value Mood
	Label string
	Color string
	Emoji string
}

var moodTable = [...]MoodDescriptor{
	{Value: MoodHappy, Label: "Happy", Color: "#fbbf24", Emoji: "😊"},
	{Value: MoodCalm, Label: "Calm", Color: "#2dd4bf", Emoji: "😌"},
	{Value: MoodNeutral, Label: "Neutral", Color: "#94a3b8", Emoji: "😐"},
	{Value: MoodAnxious, Label: "Anxious", Color: "#fb923c", Emoji: "😰"},
	{Value: MoodSad, Label: "Sad", Color: "#818cf8", Emoji: "😢"},
	{Value: MoodStressed, Label: "Stressed", Color: "#f43f5e", Emoji: "😫"},
}

// Moods returns the descriptors of all known moods in canonical order.
func Moods() []MoodDescriptor {
	out := make([]MoodDescriptor, len(moodTable))
	copy(out, moodTable[:])
	return out
}

// Describe looks up the descriptor of m.
func Describe(m Mood) (MoodDescriptor, bool) {
	for _, d := range moodTable {
		if d.Value == m {
			return d, true
		}
	}
	return MoodDescriptor{}, false
}

// DescribeOrFallback returns the descriptor of m, or a descriptor that shows
// the raw mood string with FallbackColor when m is not a known mood.
func DescribeOrFallback(m Mood) MoodDescriptor {
	if d, ok := Describe(m); ok {
		return d
	}
	return MoodDescriptor{Value: m, Label: string(m), Color: FallbackColor}
}

// Known reports whether m belongs to the fixed mood set.
func (m Mood) Known() bool {
	_, ok := Describe(m)
	return ok
}

func (m Mood) String() string { return string(m) }

// ParseMood resolves user input to a known mood. It accepts the value or the
// label in any case, or a 1-based position in the Moods order.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMoodRequired
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(moodTable) {
			return moodTable[n-1].Value, nil
		}
		return "", ErrUnknownMood
	}
	for _, d := range moodTable {
		if strings.EqualFold(s, string(d.Value)) || strings.EqualFold(s, d.Label) {
			return d.Value, nil
		}
	}
	return "", ErrUnknownMood
}
