package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupOf(l Label, n int) Group {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	g := Group{Label: l}
	for i := 0; i < n; i++ {
		g.Entries = append(g.Entries, entryAt(fmt.Sprintf("%s-%d", l, i), now.Add(-time.Duration(i)*time.Minute)))
	}
	return g
}

func TestSections_CollapsedByDefault(t *testing.T) {
	x := Expansion{}
	secs := x.Sections([]Group{groupOf(LabelToday, 5), groupOf(LabelOlder, 2)})
	require.Len(t, secs, 2)

	today := secs[0]
	assert.Equal(t, LabelToday, today.Label)
	assert.Len(t, today.Entries, CollapsedLimit)
	assert.Equal(t, 5, today.Total)
	assert.Equal(t, 2, today.Hidden)
	assert.True(t, today.HasMore)
	assert.False(t, today.Expanded)

	older := secs[1]
	assert.Len(t, older.Entries, 2)
	assert.Zero(t, older.Hidden)
	assert.False(t, older.HasMore)
}

func TestSections_ToggleExpandsOnlyThatGroup(t *testing.T) {
	x := Expansion{}
	groups := []Group{groupOf(LabelToday, 4), groupOf(LabelYesterday, 4)}

	x.Toggle(LabelToday)
	secs := x.Sections(groups)
	assert.Len(t, secs[0].Entries, 4)
	assert.True(t, secs[0].Expanded)
	assert.Zero(t, secs[0].Hidden)
	assert.Len(t, secs[1].Entries, CollapsedLimit)

	x.Toggle(LabelToday)
	secs = x.Sections(groups)
	assert.Len(t, secs[0].Entries, CollapsedLimit)
	assert.False(t, secs[0].Expanded)
}

func TestSections_ExactlyLimitHasNoMore(t *testing.T) {
	secs := Expansion{}.Sections([]Group{groupOf(LabelLastWeek, CollapsedLimit)})
	require.Len(t, secs, 1)
	assert.False(t, secs[0].HasMore)
	assert.Len(t, secs[0].Entries, CollapsedLimit)
}

func TestExpansion_NilMapReads(t *testing.T) {
	var x Expansion
	assert.False(t, x.Expanded(LabelToday))
	assert.Len(t, x.Sections([]Group{groupOf(LabelToday, 4)})[0].Entries, CollapsedLimit)
}
