package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MinNoteLength is the shortest note, in characters, the entry form accepts.
const MinNoteLength = 50

var ErrNoteTooShort = errors.New("note is too short")

// EntryInput is the editable content of an entry, sent on create and update.
type EntryInput struct {
	Mood Mood     `json:"mood"`
	Tags []string `json:"tags"`
	Note string   `json:"note"`
}

// NoteLength counts the note in characters.
func NoteLength(note string) int {
	return utf8.RuneCountInString(note)
}

// Validate checks the input the same way the entry form does.
func (in EntryInput) Validate() error {
	if in.Mood == "" {
		return ErrMoodRequired
	}
	if !in.Mood.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownMood, in.Mood)
	}
	for _, t := range in.Tags {
		if _, ok := CanonicalTag(t); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTag, t)
		}
	}
	if n := NoteLength(in.Note); n < MinNoteLength {
		return fmt.Errorf("%w: %d / %d characters", ErrNoteTooShort, n, MinNoteLength)
	}
	return nil
}
