package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/moodjournal/internal/client/client"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
)

// ErrCredentialsRequired is returned by Login when email or password is empty.
var ErrCredentialsRequired = errors.New("email and password are required")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login, Register: authenticate against the API and persist the session.
//   - Logout: end the session; the local session is cleared even if the API
//     call fails.
//   - Restore: reuse the session saved by a previous run, if still valid.
//   - LastEmail: the email of the last signed-in user, for prompts.
//   - Ping: check API reachability.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, bool)
	LastEmail(ctx context.Context) string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	meta   metadata.Repository
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// local metadata store.
func NewAuthService(c client.Client, meta metadata.Repository, log logging.Logger) AuthService {
	return &authService{client: c, meta: meta, log: log.With("service", "auth")}
}

// savedCookie is the persisted form of a session cookie.
type savedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return ErrCredentialsRequired
	}
	if err := a.client.Login(ctx, creds); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	a.saveSession(ctx, creds.Email)
	return nil
}

// Register validates creds, creates the account and keeps the session the
// server opens for it.
func (a *authService) Register(ctx context.Context, creds models.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := a.client.Register(ctx, creds); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	a.saveSession(ctx, creds.Email)
	return nil
}

// saveSession persists the session cookies and email. Failures only cost
// the session of the next run, so they are logged and swallowed.
func (a *authService) saveSession(ctx context.Context, email string) {
	var saved []savedCookie
	for _, c := range a.client.Cookies() {
		saved = append(saved, savedCookie{Name: c.Name, Value: c.Value})
	}
	if err := metadata.SetJSON(ctx, a.meta, metadata.KeySessionCookies, saved); err != nil {
		a.log.Warn(ctx, "session not saved", "error", err)
	}
	if err := a.meta.Set(ctx, metadata.KeyEmail, []byte(email)); err != nil {
		a.log.Warn(ctx, "email not saved", "error", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	a.client.ClearCookies()
	if err := a.meta.Delete(ctx, metadata.KeySessionCookies); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Restore loads the saved session cookies and asks the API who they belong
// to. Any failure means "not signed in".
func (a *authService) Restore(ctx context.Context) (*models.User, bool) {
	var saved []savedCookie
	ok, err := metadata.GetJSON(ctx, a.meta, metadata.KeySessionCookies, &saved)
	if err != nil {
		a.log.Warn(ctx, "saved session unreadable", "error", err)
		return nil, false
	}
	if !ok || len(saved) == 0 {
		return nil, false
	}

	cookies := make([]*http.Cookie, 0, len(saved))
	for _, c := range saved {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	a.client.SetCookies(cookies)

	user, err := a.client.Me(ctx)
	if err != nil {
		a.log.Debug(ctx, "saved session rejected", "error", err)
		return nil, false
	}
	return user, true
}

func (a *authService) LastEmail(ctx context.Context) string {
	v, err := a.meta.Get(ctx, metadata.KeyEmail)
	if err != nil {
		a.log.Warn(ctx, "email unreadable", "error", err)
		return ""
	}
	return string(v)
}

// Ping proxies a reachability check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
