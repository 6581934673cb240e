package timeline

import "github.com/dmitrijs2005/moodjournal/internal/client/models"

// CollapsedLimit is the number of entries a collapsed group shows.
const CollapsedLimit = 3

// Expansion tracks which groups are expanded. The zero value is usable for
// reads; groups are collapsed unless marked otherwise.
type Expansion map[Label]bool

// Toggle flips the expansion state of a group.
func (x Expansion) Toggle(l Label) {
	x[l] = !x[l]
}

// Expanded reports whether a group is expanded.
func (x Expansion) Expanded(l Label) bool {
	return x[l]
}

// Section is a group as it is displayed.
type Section struct {
	Label    Label
	Entries  []models.Entry // visible entries
	Total    int
	Hidden   int
	Expanded bool
	HasMore  bool // group is longer than CollapsedLimit
}

// Sections applies the expansion state to groups.
func (x Expansion) Sections(groups []Group) []Section {
	out := make([]Section, 0, len(groups))
	for _, g := range groups {
		s := Section{
			Label:    g.Label,
			Entries:  g.Entries,
			Total:    len(g.Entries),
			Expanded: x.Expanded(g.Label),
			HasMore:  len(g.Entries) > CollapsedLimit,
		}
		if s.HasMore && !s.Expanded {
			s.Entries = g.Entries[:CollapsedLimit]
			s.Hidden = s.Total - CollapsedLimit
		}
		out = append(out, s)
	}
	return out
}
