package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

var (
	getMultiline = GetMultiline
	getConfirm   = GetConfirm
)

// clearTags is typed at the tags prompt to remove all tags of an entry.
const clearTags = "-"

func (a *App) NewEntry(ctx context.Context) error {
	var in models.EntryInput
	if a.draft != nil {
		resume, err := getConfirm(a.reader, "Resume the entry that was not saved?", a.p.w)
		if err != nil {
			return err
		}
		if resume {
			in = *a.draft
		}
		a.draft = nil
	}

	in, err := a.promptEntry(in, in.Mood != "")
	if err != nil {
		if errors.Is(err, errCanceled) {
			a.p.println("Cancelled.")
		}
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	res, err := a.entries.Create(rctx, in)
	if err != nil {
		a.draft = &in
		a.report(ctx, "Failed to save entry", err)
		a.p.println(a.p.dim("Your entry was kept. Type 'new' to try again."))
		return err
	}

	a.p.println(a.p.success("Entry saved ") + a.p.dim("["+shortID(res.Entry.ID)+"]"))
	a.printVibeCheck(res.Entry, res.AIResponse, res.VibeCheckErr)
	return nil
}

func (a *App) printVibeCheck(e models.Entry, reply string, vibeErr error) {
	if vibeErr != nil {
		a.p.println(a.p.dim("Vibe check unavailable: " + describeError(vibeErr)))
		return
	}
	if reply == "" {
		return
	}
	a.lastVibe = reply
	a.p.println(a.p.heading("Vibe check"))
	a.p.println(a.p.markdown(reply))
	if e.Disclaimer != "" {
		a.p.println(a.p.dim(e.Disclaimer))
	}
	a.p.println(a.p.dim("(type 'copy' to copy it)"))
}

func (a *App) EditEntry(ctx context.Context, ref string) error {
	e, err := a.pickEntry(ref)
	if err != nil {
		return err
	}

	a.p.printEntry(e, a.entryLocation())
	a.p.println(a.p.dim("Press Enter to keep the current value."))
	in, err := a.promptEntry(e.Input(), true)
	if err != nil {
		if errors.Is(err, errCanceled) {
			a.p.println("Cancelled.")
		}
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	updated, err := a.entries.Update(rctx, e.ID, in)
	if err != nil {
		a.report(ctx, "Failed to update entry", err)
		return err
	}

	a.p.println(a.p.success("Entry updated"))
	a.p.printEntry(*updated, a.entryLocation())
	return nil
}

func (a *App) DeleteEntry(ctx context.Context, ref string) error {
	e, err := a.pickEntry(ref)
	if err != nil {
		return err
	}

	a.p.printEntry(e, a.entryLocation())
	ok, err := getConfirm(a.reader, "Are you sure you want to delete this entry?", a.p.w)
	if err != nil {
		return err
	}
	if !ok {
		a.p.println("Cancelled.")
		return nil
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	if err := a.entries.Delete(rctx, e.ID); err != nil {
		a.report(ctx, "Failed to delete entry", err)
		return err
	}
	a.p.println(a.p.success("Entry deleted"))
	return nil
}

// pickEntry resolves ref, prompting for it when empty, and prints the
// reason when it matches no single entry.
func (a *App) pickEntry(ref string) (models.Entry, error) {
	if ref == "" {
		var err error
		ref, err = getSimpleText(a.reader, "Entry id", a.p.w)
		if err != nil {
			return models.Entry{}, err
		}
	}
	e, err := a.resolveEntry(ref)
	if err != nil {
		a.p.println(a.p.errText(fmt.Sprintf("%s: %s", ref, err)))
		return models.Entry{}, err
	}
	return e, nil
}

// resolveEntry finds a cached entry by id or by a unique id prefix.
func (a *App) resolveEntry(ref string) (models.Entry, error) {
	ref = strings.Trim(strings.TrimSpace(ref), "[]")
	if ref == "" {
		return models.Entry{}, errEntryNotFound
	}
	if e, ok := a.entries.Get(ref); ok {
		return e, nil
	}

	var found []models.Entry
	for _, e := range a.entries.Cached() {
		if strings.HasPrefix(e.ID, ref) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return models.Entry{}, errEntryNotFound
	case 1:
		return found[0], nil
	}
	return models.Entry{}, errAmbiguousID
}

// promptEntry asks for mood, tags and note starting from cur. With keep set,
// an empty answer keeps the current value; otherwise an empty mood or note
// cancels.
func (a *App) promptEntry(cur models.EntryInput, keep bool) (models.EntryInput, error) {
	mood, err := a.promptMood(cur.Mood, keep)
	if err != nil {
		return cur, err
	}
	cur.Mood = mood

	tags, err := a.promptTags(cur.Tags)
	if err != nil {
		return cur, err
	}
	cur.Tags = tags

	note, err := a.promptNote(cur.Note, keep)
	if err != nil {
		return cur, err
	}
	cur.Note = note
	return cur, nil
}

func (a *App) promptMood(cur models.Mood, keep bool) (models.Mood, error) {
	a.p.println("How are you feeling?")
	for i, d := range models.Moods() {
		a.p.println(fmt.Sprintf("  %d. %s", i+1, a.p.moodLabel(d.Value, 0)))
	}

	current := ""
	if keep && cur != "" {
		current = models.DescribeOrFallback(cur).Label
	}
	for {
		v, err := getWithDefault(a.reader, "Mood (number or name)", current, a.p.w)
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", errCanceled
		}
		m, err := models.ParseMood(v)
		if err != nil {
			a.p.println(a.p.errText(fmt.Sprintf("%s: %q", err, v)))
			continue
		}
		return m, nil
	}
}

func (a *App) promptTags(cur []string) ([]string, error) {
	prompt := "Tags, comma separated (optional): " + strings.Join(models.Tags(), ", ")
	if len(cur) > 0 {
		prompt += fmt.Sprintf("\n'%s' removes all tags", clearTags)
	}
	for {
		v, err := getWithDefault(a.reader, prompt, strings.Join(cur, ", "), a.p.w)
		if err != nil {
			return nil, err
		}
		if v == clearTags {
			return []string{}, nil
		}
		tags, err := models.ParseTags(v)
		if err != nil {
			a.p.println(a.p.errText(err.Error()))
			continue
		}
		return tags, nil
	}
}

func (a *App) promptNote(cur string, keep bool) (string, error) {
	prompt := fmt.Sprintf("What's on your mind? (at least %d characters)", models.MinNoteLength)
	if cur != "" {
		prompt = fmt.Sprintf("Current note:\n%s\n%s", cur, prompt)
	}
	for {
		v, err := getMultiline(a.reader, prompt, a.p.w)
		if err != nil {
			return "", err
		}
		if v == "" {
			if keep && cur != "" {
				v = cur
			} else {
				return "", errCanceled
			}
		}
		if n := models.NoteLength(v); n < models.MinNoteLength {
			a.p.println(a.p.warn(fmt.Sprintf("%d / %d characters", n, models.MinNoteLength)))
			continue
		}
		return v, nil
	}
}

// entryLocation is the zone entry times are shown in.
func (a *App) entryLocation() *time.Location {
	return a.now().Location()
}
