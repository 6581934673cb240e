package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// Client is the journal API as seen by the services.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)

	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	VibeCheck(ctx context.Context, note string) (string, error)

	// Cookies returns the session cookies for persistence between runs.
	Cookies() []*http.Cookie
	// SetCookies restores previously saved session cookies.
	SetCookies(cookies []*http.Cookie)
	// ClearCookies drops the session held in memory.
	ClearCookies()
}
