package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEntry_DecodeKeepsMalformedTimestamp(t *testing.T) {
	data := `[
		{"id":"a","mood":"happy","tags":["Work"],"note":"n","created_at":"2025-06-15T10:00:00Z"},
		{"id":"b","mood":"elated","tags":[],"note":"n","created_at":"yesterday-ish"}
	]`

	var entries []Entry
	require.NoError(t, json.Unmarshal([]byte(data), &entries))
	require.Len(t, entries, 2)

	ts, ok := entries[0].Created()
	require.True(t, ok)
	require.True(t, ts.Equal(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)))

	_, ok = entries[1].Created()
	require.False(t, ok)
	require.Equal(t, Mood("elated"), entries[1].Mood)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	for _, s := range []string{
		"2025-06-15T10:30:00Z",
		"2025-06-15T10:30:00.000Z",
		"2025-06-15T13:30:00+03:00",
		"2025-06-15 10:30:00+00",
		"2025-06-15 10:30:00.123+00:00",
	} {
		got, ok := ParseTimestamp(s)
		require.True(t, ok, s)
		require.True(t, got.Truncate(time.Second).Equal(want), "%s -> %s", s, got)
	}

	local, ok := ParseTimestamp("2025-06-15T10:30:00")
	require.True(t, ok)
	require.True(t, local.Equal(time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)), "%s", local)

	for _, s := range []string{"", "  ", "not a date", "2025-13-45T99:00:00Z"} {
		_, ok := ParseTimestamp(s)
		require.False(t, ok, s)
	}
}

func TestEntry_ApplyKeepsIdentity(t *testing.T) {
	e := Entry{ID: "x", Mood: MoodSad, Tags: []string{"Work"}, Note: "old", AIResponse: "hi", CreatedAt: "2025-06-15T10:00:00Z"}
	in := EntryInput{Mood: MoodCalm, Tags: []string{"Sleep", "Food"}, Note: strings.Repeat("n", 60)}

	got := e.Apply(in)

	require.Equal(t, "x", got.ID)
	require.Equal(t, "2025-06-15T10:00:00Z", got.CreatedAt)
	require.Equal(t, MoodCalm, got.Mood)
	require.Equal(t, []string{"Sleep", "Food"}, got.Tags)
	require.Equal(t, "hi", got.AIResponse)
	require.Equal(t, MoodSad, e.Mood, "receiver must not change")

	in.Tags[0] = "Travel"
	require.Equal(t, "Sleep", got.Tags[0], "tags must be copied")
}

func TestEntryInput_Validate(t *testing.T) {
	long := strings.Repeat("a", MinNoteLength)

	tests := []struct {
		name string
		in   EntryInput
		err  error
	}{
		{name: "ok", in: EntryInput{Mood: MoodHappy, Tags: []string{"Work"}, Note: long}},
		{name: "ok without tags", in: EntryInput{Mood: MoodCalm, Note: long}},
		{name: "missing mood", in: EntryInput{Note: long}, err: ErrMoodRequired},
		{name: "unknown mood", in: EntryInput{Mood: "elated", Note: long}, err: ErrUnknownMood},
		{name: "unknown tag", in: EntryInput{Mood: MoodSad, Tags: []string{"Gaming"}, Note: long}, err: ErrUnknownTag},
		{name: "short note", in: EntryInput{Mood: MoodSad, Note: long[1:]}, err: ErrNoteTooShort},
		{name: "note counted in characters", in: EntryInput{Mood: MoodSad, Note: strings.Repeat("é", MinNoteLength-1)}, err: ErrNoteTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, Credentials{Email: "a@b.c", Password: "12345678"}.Validate())
	require.ErrorIs(t, Credentials{Email: "ab.c", Password: "12345678"}.Validate(), ErrInvalidEmail)
	require.ErrorIs(t, Credentials{Email: "a@b.c", Password: "1234567"}.Validate(), ErrPasswordTooShort)
}
