package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/dmitrijs2005/moodjournal/internal/client/cache"
	"github.com/dmitrijs2005/moodjournal/internal/client/client"
	"github.com/dmitrijs2005/moodjournal/internal/client/config"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/repositories/entries"
	"github.com/dmitrijs2005/moodjournal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/moodjournal/internal/client/services"
	"github.com/dmitrijs2005/moodjournal/internal/client/timeline"
	"github.com/dmitrijs2005/moodjournal/internal/filex"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

const pingTimeout = 3 * time.Second

type App struct {
	config  *config.Config
	auth    services.AuthService
	entries services.EntryService
	log     logging.Logger
	reader  *bufio.Reader
	p       *printer

	now    func() time.Time
	copyFn func(string) error

	mu   sync.RWMutex
	mode Mode

	user      *models.User
	expansion timeline.Expansion
	draft     *models.EntryInput
	lastVibe  string

	closeFn func() error
}

// NewApp opens the local database, builds the API client and the services,
// and returns an App reading from stdin and writing to stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if filex.IsPathDSN(cfg.DatabasePath) {
		if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
			return nil, err
		}
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, client.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(api, metadata.NewSQLiteRepository(db), log)
	es := services.NewEntryService(api, cache.NewEntryCache(), entries.NewSQLiteRepository(db), log)

	a := newApp(cfg, as, es, log, os.Stdin, os.Stdout)
	a.closeFn = db.Close
	return a, nil
}

func newApp(cfg *config.Config, as services.AuthService, es services.EntryService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    cfg,
		auth:      as,
		entries:   es,
		log:       log,
		reader:    bufio.NewReader(in),
		p:         newPrinter(out),
		now:       time.Now,
		copyFn:    clipboard.WriteAll,
		mode:      ModeDisabled,
		expansion: timeline.Expansion{},
	}
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.p.println(a.p.dim(fmt.Sprintf("Switched to %s mode", mode)))
	}
}

// Run starts the client and blocks in the REPL until the user exits or the
// input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	a.p.println(a.p.heading("Welcome to moodjournal") + " (type 'help' for commands)")
	a.Start(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// RunOnce starts the client and runs fn once, for the non-interactive
// commands.
func (a *App) RunOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	defer a.Close(ctx)

	a.Start(ctx)
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return fn(ctx)
}

// Start probes the API, restores the saved session and loads the working
// set. When the API is unreachable the saved entries of the last user are
// shown instead.
func (a *App) Start(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pctx)
	cancel()

	if err != nil {
		a.log.Info(ctx, "api unreachable", "error", err)
		a.setMode(ModeOffline)
		a.startOffline(ctx)
		return
	}
	a.setMode(ModeOnline)

	rctx, cancel := a.requestCtx(ctx)
	user, ok := a.auth.Restore(rctx)
	cancel()
	if !ok {
		a.p.println(a.p.dim("Type 'login' or 'register' to start."))
		return
	}
	if user.Email == "" {
		user.Email = a.auth.LastEmail(ctx)
	}
	a.user = user
	a.p.println("Welcome back, " + user.Email)
	_ = a.Refresh(ctx)
}

func (a *App) startOffline(ctx context.Context) {
	email := a.auth.LastEmail(ctx)
	if email == "" {
		a.p.println(a.p.warn("Server unreachable. Log in once it is back to start journaling."))
		return
	}
	list, err := a.entries.Offline(ctx)
	if err != nil {
		a.p.println(a.p.warn("Server unreachable and no saved entries are available."))
		return
	}
	a.user = &models.User{Email: email}
	a.p.println(a.p.warn(fmt.Sprintf("Server unreachable, showing %d saved entries of %s.", len(list), email)))
}

// Close releases the API client and the local database.
func (a *App) Close(ctx context.Context) {
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// StartOnlineStatusWatcher pings the API every interval and switches
// between online and offline mode until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pctx)
	cancel()

	if err != nil {
		if a.Mode() == ModeOnline {
			a.log.Info(ctx, "api unreachable", "error", err)
			a.setMode(ModeOffline)
		}
		return
	}
	if a.Mode() != ModeOnline {
		a.setMode(ModeOnline)
	}
}

func (a *App) status() string {
	s := ""
	if a.user != nil {
		s = a.user.Email + " "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}
