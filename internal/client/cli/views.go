package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/moodjournal/internal/client/analytics"
	"github.com/dmitrijs2005/moodjournal/internal/client/client"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/timeline"
)

const (
	maxBarWidth = 30
	dateLayout  = "Jan 2"
)

// MessageTimelineFailed is shown instead of the timeline while the working
// set could not be loaded.
const MessageTimelineFailed = "Failed to load timeline"

func (a *App) Timeline(ctx context.Context) error {
	if err := a.entries.LoadErr(); err != nil {
		a.p.println(a.p.errText(MessageTimelineFailed))
		a.p.println(a.p.dim("Type 'refresh' to try again."))
		return err
	}

	groups := a.entries.Timeline(a.now())
	if len(groups) == 0 {
		a.p.println(a.p.dim("No entries yet. Type 'new' to write one."))
		return nil
	}

	loc := a.entryLocation()
	for _, s := range a.expansion.Sections(groups) {
		a.p.println(a.p.heading(fmt.Sprintf("%s (%d)", s.Label, s.Total)))
		for _, e := range s.Entries {
			a.p.printEntry(e, loc)
		}
		if s.HasMore {
			key := strings.ToLower(string(s.Label))
			if s.Expanded {
				a.p.println(a.p.dim("Show Less: less " + key))
			} else {
				a.p.println(a.p.dim(fmt.Sprintf("Show %d More: more %s", s.Hidden, key)))
			}
		}
		a.p.println()
	}
	return nil
}

// Toggle expands or collapses one timeline group and shows the timeline.
func (a *App) Toggle(ctx context.Context, group string, expand bool) error {
	l, ok := timeline.ParseLabel(group)
	if !ok {
		names := make([]string, 0, 4)
		for _, known := range timeline.Labels() {
			names = append(names, strings.ToLower(string(known)))
		}
		a.p.println(a.p.errText(fmt.Sprintf("Unknown group %q, use one of: %s", group, strings.Join(names, ", "))))
		return errUnknownGroup
	}
	a.expansion[l] = expand
	return a.Timeline(ctx)
}

// Insights fetches the entries and shows the weekly mood distribution, or
// the daily trend when daily is set.
func (a *App) Insights(ctx context.Context, daily bool) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	v := a.entries.Weekly(rctx, a.now())

	switch v.Status {
	case analytics.StatusFailed:
		a.p.println(a.p.errText(v.Message()))
		if errors.Is(v.Err, client.ErrUnauthorized) {
			a.p.println(a.p.warn("Your session is no longer valid. Type 'login' to log in again."))
		}
		return v.Err
	case analytics.StatusEmpty:
		a.p.println(a.p.dim(v.Message()))
		return nil
	}

	if daily {
		a.printDailyTrend(v.Report)
	} else {
		a.printDistribution(v.Report)
	}
	return nil
}

func (a *App) windowTitle(title string, r analytics.Report) string {
	loc := a.entryLocation()
	span := fmt.Sprintf("%s - %s", r.Window.Start.In(loc).Format(dateLayout), r.Window.End.In(loc).Format(dateLayout))
	return a.p.heading(title) + "  " + a.p.dim(span)
}

// printDistribution draws one bar per mood, scaled to the largest count:
//
//	😊 Happy    ██████████ 4
//	😌 Calm     █████ 2
func (a *App) printDistribution(r analytics.Report) {
	a.p.println(a.windowTitle("Mood Distribution", r))

	maxCount, labelWidth := 0, 0
	for _, mc := range r.Distribution {
		maxCount = max(maxCount, mc.Count)
		labelWidth = max(labelWidth, lipgloss.Width(moodText(mc.Mood)))
	}
	for _, mc := range r.Distribution {
		n := mc.Count * maxBarWidth / maxCount
		if n == 0 && mc.Count > 0 {
			n = 1
		}
		a.p.println(fmt.Sprintf("%s %s %d", a.p.moodLabel(mc.Mood, labelWidth), a.p.blocks(n, mc.Color), mc.Count))
	}
	a.p.println(a.p.dim(fmt.Sprintf("%d entries this week", r.Total)))
}

// printDailyTrend draws one row per day with a stacked bar of the day's
// moods, followed by a legend.
func (a *App) printDailyTrend(r analytics.Report) {
	a.p.println(a.windowTitle("Daily Mood Trend", r))

	moods := models.Moods()
	for _, row := range r.Daily {
		var bar strings.Builder
		for _, d := range moods {
			bar.WriteString(a.p.blocks(row.Counts[d.Value], d.Color))
		}
		a.p.println(fmt.Sprintf("%-3s %s %2d %s", row.Weekday, a.p.dim(row.Date), row.Total(), bar.String()))
	}

	legend := make([]string, 0, len(moods))
	for _, d := range moods {
		legend = append(legend, a.p.blocks(1, d.Color)+" "+d.Label)
	}
	a.p.println(a.p.dim("Legend: ") + strings.Join(legend, "  "))
}

// Refresh reloads the working set. When the server cannot be reached the
// saved entries are used for the timeline.
func (a *App) Refresh(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	list, err := a.entries.Load(rctx)
	if err == nil {
		a.p.println(a.p.dim(fmt.Sprintf("Loaded %d entries.", len(list))))
		return nil
	}

	if !errors.Is(err, client.ErrUnavailable) {
		a.report(ctx, "Failed to load entries", err)
		return err
	}

	a.setMode(ModeOffline)
	saved, oerr := a.entries.Offline(ctx)
	if oerr != nil {
		a.report(ctx, "Failed to load entries", err)
		return err
	}
	a.p.println(a.p.warn(fmt.Sprintf("Server unreachable, showing %d saved entries.", len(saved))))
	return nil
}

// Copy puts the last vibe-check reply on the clipboard.
func (a *App) Copy(ctx context.Context) error {
	if a.lastVibe == "" {
		a.p.println(a.p.dim("Nothing to copy yet. A vibe check appears after you save a new entry."))
		return errNothingToCopy
	}
	if err := a.copyFn(a.lastVibe); err != nil {
		a.report(ctx, "Failed to copy", err)
		return err
	}
	a.p.println(a.p.success("Vibe check copied to the clipboard."))
	return nil
}
