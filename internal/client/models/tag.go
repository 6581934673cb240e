package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTag = errors.New("unknown tag")

var tagVocabulary = [...]string{
	"Work",
	"Family",
	"Health",
	"Sleep",
	"Exercise",
	"Social",
	"Hobbies",
	"Weather",
	"Food",
	"Travel",
	"Creativity",
	"Productivity",
}

// Tags returns the tag vocabulary in display order.
func Tags() []string {
	out := make([]string, len(tagVocabulary))
	copy(out, tagVocabulary[:])
	return out
}

// CanonicalTag returns the vocabulary spelling of tag, matched case-insensitively.
func CanonicalTag(tag string) (string, bool) {
	tag = strings.TrimSpace(tag)
	for _, t := range tagVocabulary {
		if strings.EqualFold(t, tag) {
			return t, true
		}
	}
	return "", false
}

// ParseTags splits a comma separated list into canonical tags. Duplicates are
// dropped and the first-seen order is kept.
func ParseTags(s string) ([]string, error) {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, ok := CanonicalTag(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, strings.TrimSpace(part))
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags, nil
}
