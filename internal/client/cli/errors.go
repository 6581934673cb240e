package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/moodjournal/internal/client/client"
)

var (
	errCanceled      = errors.New("canceled")
	errEntryNotFound = errors.New("entry not found")
	errAmbiguousID   = errors.New("id matches more than one entry")
	errNotLoggedIn   = errors.New("not logged in")
	errNothingToCopy = errors.New("nothing to copy")
	errUnknownGroup  = errors.New("unknown group")
)

// describeError turns err into a short message for the user.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	}
	return err.Error()
}

// report prints what to a user together with the reason of err and logs
// err. A rejected session adds a hint to log in again.
func (a *App) report(ctx context.Context, what string, err error) {
	a.log.Warn(ctx, what, "error", err)
	a.p.println(a.p.errText(what + ": " + describeError(err)))
	if errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn() {
		a.p.println(a.p.warn("Your session is no longer valid. Type 'login' to log in again."))
	}
}
