package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/analytics"
	"github.com/dmitrijs2005/moodjournal/internal/client/config"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/services"
	"github.com/dmitrijs2005/moodjournal/internal/client/timeline"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
)

type fakeAuth struct {
	pingErr     error
	loginErr    error
	registerErr error
	logoutErr   error
	restoreUser *models.User
	lastEmail   string

	logins    []models.Credentials
	registers []models.Credentials
	logouts   int
	closed    bool
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) error {
	f.logins = append(f.logins, creds)
	return f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, creds models.Credentials) error {
	f.registers = append(f.registers, creds)
	return f.registerErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logouts++
	return f.logoutErr
}

func (f *fakeAuth) Restore(ctx context.Context) (*models.User, bool) {
	if f.restoreUser == nil {
		return nil, false
	}
	u := *f.restoreUser
	return &u, true
}

func (f *fakeAuth) LastEmail(ctx context.Context) string { return f.lastEmail }
func (f *fakeAuth) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { f.closed = true; return nil }

// fakeEntries keeps the working set in a slice and lets tests preset the
// outcome of every call.
type fakeEntries struct {
	list    []models.Entry
	offline []models.Entry

	loadErr    error
	offlineErr error
	createErr  error
	updateErr  error
	deleteErr  error
	weeklyErr  error
	vibe       string
	vibeErr    error

	lastLoadErr error

	created []models.EntryInput
	updated map[string]models.EntryInput
	deleted []string
	resets  int
}

func (f *fakeEntries) Load(ctx context.Context) ([]models.Entry, error) {
	f.lastLoadErr = f.loadErr
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.list, nil
}

func (f *fakeEntries) LoadErr() error { return f.lastLoadErr }

func (f *fakeEntries) Offline(ctx context.Context) ([]models.Entry, error) {
	if f.offlineErr != nil {
		return nil, f.offlineErr
	}
	f.list = f.offline
	f.lastLoadErr = nil
	return f.offline, nil
}

func (f *fakeEntries) Create(ctx context.Context, in models.EntryInput) (*services.CreateResult, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := models.Entry{ID: "new-entry-id", Mood: in.Mood, Tags: in.Tags, Note: in.Note, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
	f.list = append([]models.Entry{e}, f.list...)
	return &services.CreateResult{Entry: e, AIResponse: f.vibe, VibeCheckErr: f.vibeErr}, nil
}

func (f *fakeEntries) Update(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error) {
	if f.updated == nil {
		f.updated = map[string]models.EntryInput{}
	}
	f.updated[id] = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, e := range f.list {
		if e.ID == id {
			f.list[i] = e.Apply(in)
			out := f.list[i]
			return &out, nil
		}
	}
	return nil, services.ErrInvalidResponse
}

func (f *fakeEntries) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.list {
		if e.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEntries) Reset(ctx context.Context) error {
	f.resets++
	f.list = nil
	f.lastLoadErr = nil
	return nil
}

func (f *fakeEntries) Timeline(now time.Time) []timeline.Group {
	return timeline.GroupByRecency(timeline.SortNewestFirst(f.list), now)
}

func (f *fakeEntries) Weekly(ctx context.Context, now time.Time) analytics.View {
	if f.weeklyErr != nil {
		return analytics.Load(nil, f.weeklyErr, now)
	}
	return analytics.Load(f.list, nil, now)
}

func (f *fakeEntries) Cached() []models.Entry {
	return append([]models.Entry(nil), f.list...)
}

func (f *fakeEntries) Get(id string) (models.Entry, bool) {
	for _, e := range f.list {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// newTestApp builds an App over the fakes that reads the given input lines
// and writes to the returned buffer.
func newTestApp(t *testing.T, as *fakeAuth, es *fakeEntries, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	a := newApp(cfg, as, es, logging.Discard(), strings.NewReader(input), &out)
	a.now = func() time.Time { return testNow }
	a.copyFn = func(string) error { t.Fatal("clipboard used without a stub"); return nil }
	return a, &out
}

func entryAt(id string, mood models.Mood, ago time.Duration) models.Entry {
	return models.Entry{
		ID:        id,
		Mood:      mood,
		Note:      "a note of " + id,
		CreatedAt: testNow.Add(-ago).Format(time.RFC3339),
	}
}

const longNote = "Today was a genuinely good day, I finished the project and went for a run."
