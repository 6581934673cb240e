// Package models defines journal entries, the mood and tag vocabularies and
// the validation rules applied before anything is sent to the API.
package models

import (
	"strings"
	"time"
)

// Entry is a journal entry as returned by the API.
//
// CreatedAt is kept as the raw wire string so that a single malformed
// timestamp does not fail decoding of a whole list; use Created to read it.
type Entry struct {
	ID         string   `json:"id"`
	Mood       Mood     `json:"mood"`
	Tags       []string `json:"tags"`
	Note       string   `json:"note"`
	AIResponse string   `json:"ai_response,omitempty"`
	Disclaimer string   `json:"disclaimer,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
}

// localLayout carries no zone and is read in time.Local, the way a browser
// reads such a string.
const localLayout = "2006-01-02T15:04:05.999999999"

// ParseTimestamp parses the timestamp formats the API is known to emit.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(localLayout, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Created returns the parsed creation time and whether it could be parsed.
func (e Entry) Created() (time.Time, bool) {
	return ParseTimestamp(e.CreatedAt)
}

// Apply returns a copy of e with mood, tags and note taken from in.
// ID and CreatedAt are never changed by an edit.
func (e Entry) Apply(in EntryInput) Entry {
	e.Mood = in.Mood
	e.Tags = append([]string(nil), in.Tags...)
	e.Note = in.Note
	return e
}

// Input returns the editable part of e.
func (e Entry) Input() EntryInput {
	return EntryInput{Mood: e.Mood, Tags: append([]string(nil), e.Tags...), Note: e.Note}
}
