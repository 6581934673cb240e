// Package timeline partitions journal entries into recency groups for the
// timeline view.
//
// Recency is measured on instants: an entry belongs to Today when it was
// created less than 24 hours before now, regardless of the calendar date.
package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// Label names a recency group.
type Label string

const (
	LabelToday     Label = "Today"
	LabelYesterday Label = "Yesterday"
	LabelLastWeek  Label = "Last Week"
	LabelOlder     Label = "Older"
)

// Labels returns the group labels in display order.
func Labels() []Label {
	return []Label{LabelToday, LabelYesterday, LabelLastWeek, LabelOlder}
}

// ParseLabel resolves a user-typed group name.
func ParseLabel(s string) (Label, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	switch key {
	case "today":
		return LabelToday, true
	case "yesterday":
		return LabelYesterday, true
	case "lastweek", "week":
		return LabelLastWeek, true
	case "older":
		return LabelOlder, true
	}
	return "", false
}

// Group holds the entries of one recency label.
type Group struct {
	Label   Label
	Entries []models.Entry
}

const day = 24 * time.Hour

// wholeDays returns floor((now - t) / 24h).
func wholeDays(now, t time.Time) int64 {
	d := now.Sub(t)
	n := int64(d / day)
	if d < 0 && d%day != 0 {
		n--
	}
	return n
}

// classify picks the label of e relative to now. Unparseable timestamps go to
// Older. Timestamps ahead of now, e.g. from clock skew, go to Today, not to
// Last Week where a plain day-difference check of 0, 1 and < 7 puts them.
func classify(e models.Entry, now time.Time) Label {
	created, ok := e.Created()
	if !ok {
		return LabelOlder
	}
	switch d := wholeDays(now, created); {
	case d <= 0:
		return LabelToday
	case d == 1:
		return LabelYesterday
	case d < 7:
		return LabelLastWeek
	default:
		return LabelOlder
	}
}

// GroupByRecency buckets entries into recency groups. Only non-empty groups
// are returned, in display order. Entries keep their input order within a
// group; callers sort with SortNewestFirst beforehand.
func GroupByRecency(entries []models.Entry, now time.Time) []Group {
	labels := Labels()
	buckets := make(map[Label][]models.Entry, len(labels))

	for _, e := range entries {
		l := classify(e, now)
		buckets[l] = append(buckets[l], e)
	}

	var groups []Group
	for _, l := range labels {
		if es := buckets[l]; len(es) > 0 {
			groups = append(groups, Group{Label: l, Entries: es})
		}
	}
	return groups
}

// SortNewestFirst returns a copy of entries ordered by creation time,
// newest first. Entries whose timestamp cannot be parsed are placed last,
// keeping their relative order.
func SortNewestFirst(entries []models.Entry) []models.Entry {
	type keyed struct {
		e  models.Entry
		t  time.Time
		ok bool
	}
	ks := make([]keyed, len(entries))
	for i, e := range entries {
		t, ok := e.Created()
		ks[i] = keyed{e: e, t: t, ok: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		return ks[i].t.After(ks[j].t)
	})

	out := make([]models.Entry, len(ks))
	for i, k := range ks {
		out[i] = k.e
	}
	return out
}
