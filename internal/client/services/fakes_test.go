package services

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"testing"

	"github.com/dmitrijs2005/moodjournal/internal/client/client"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client for service tests. Each method returns
// the preset values and records its arguments.
type fakeClient struct {
	mu sync.Mutex

	LoginErr    error
	RegisterErr error
	LogoutErr   error
	MeRet       *models.User
	MeErr       error
	PingErr     error
	CloseErr    error

	ListRet   []models.Entry
	ListErr   error
	ListHook  func()
	CreateRet *models.Entry
	CreateErr error
	UpdateRet *models.Entry
	UpdateErr error
	DeleteErr error
	VibeRet   string
	VibeErr   error

	Jar []*http.Cookie

	Calls          []string
	LastCreds      models.Credentials
	LastInput      models.EntryInput
	LastID         string
	LastVibeNote   string
	CookiesCleared bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) call(name string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Close() error                   { f.call("Close"); return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { f.call("Ping"); return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, creds models.Credentials) error {
	f.call("Register")
	f.LastCreds = creds
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) error {
	f.call("Login")
	f.LastCreds = creds
	return f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error { f.call("Logout"); return f.LogoutErr }

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.call("Me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	f.call("ListEntries")
	if f.ListHook != nil {
		f.ListHook()
	}
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	f.call("CreateEntry")
	f.LastInput = in
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateEntry(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error) {
	f.call("UpdateEntry")
	f.LastID, f.LastInput = id, in
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id string) error {
	f.call("DeleteEntry")
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) VibeCheck(ctx context.Context, note string) (string, error) {
	f.call("VibeCheck")
	f.LastVibeNote = note
	return f.VibeRet, f.VibeErr
}

func (f *fakeClient) Cookies() []*http.Cookie { return f.Jar }

func (f *fakeClient) SetCookies(cookies []*http.Cookie) { f.Jar = cookies }

func (f *fakeClient) ClearCookies() {
	f.Jar = nil
	f.CookiesCleared = true
}
