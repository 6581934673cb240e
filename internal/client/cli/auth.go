package cli

import (
	"context"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/timeline"
)

var (
	getSimpleText  = GetSimpleText
	getWithDefault = GetWithDefault
	getPassword    = GetPassword
)

func (a *App) promptCredentials(ctx context.Context) (models.Credentials, error) {
	email, err := getWithDefault(a.reader, "Enter email", a.auth.LastEmail(ctx), a.p.w)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := getPassword(a.reader, a.p.w)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Email: email, Password: password}, nil
}

func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.p.w)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.p.w)
	if err != nil {
		return err
	}
	creds := models.Credentials{Email: email, Password: password}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	if err := a.auth.Register(rctx, creds); err != nil {
		a.report(ctx, "Registration failed", err)
		return err
	}

	a.signedIn(ctx, creds.Email)
	a.p.println(a.p.success("Account created. Welcome, " + creds.Email))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	creds, err := a.promptCredentials(ctx)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()
	if err := a.auth.Login(rctx, creds); err != nil {
		a.report(ctx, "Login failed", err)
		return err
	}

	a.signedIn(ctx, creds.Email)
	a.p.println(a.p.success("Logged in as " + creds.Email))
	return a.Refresh(ctx)
}

// signedIn switches the App to a fresh session of email.
func (a *App) signedIn(ctx context.Context, email string) {
	if prev := a.user; prev != nil && prev.Email != email {
		a.resetSession(ctx)
	}
	a.user = &models.User{Email: email}
	a.setMode(ModeOnline)
}

func (a *App) Logout(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	err := a.auth.Logout(rctx)
	a.resetSession(ctx)
	a.user = nil
	if err != nil {
		a.report(ctx, "Logout incomplete", err)
		return err
	}
	a.p.println("Logged out.")
	return nil
}

// resetSession drops everything that belongs to the signed-in user.
func (a *App) resetSession(ctx context.Context) {
	if err := a.entries.Reset(ctx); err != nil {
		a.log.Warn(ctx, "error clearing entries", "error", err)
	}
	a.expansion = timeline.Expansion{}
	a.draft = nil
	a.lastVibe = ""
}
