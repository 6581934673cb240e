package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/analytics"
	"github.com/dmitrijs2005/moodjournal/internal/client/cache"
	"github.com/dmitrijs2005/moodjournal/internal/client/client"
	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/client/repositories/entries"
	"github.com/dmitrijs2005/moodjournal/internal/client/timeline"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
)

// ErrInvalidResponse is returned when the API accepts a write but sends back
// no usable entry.
var ErrInvalidResponse = errors.New("invalid response from server")

// CreateResult is the outcome of a successful create. VibeCheckErr is set
// when the entry was saved but the vibe check failed.
type CreateResult struct {
	Entry        models.Entry
	AIResponse   string
	VibeCheckErr error
}

// EntryService manages the journal working set.
//
// Writes go to the API first and are then applied to the in-memory cache and
// the local mirror; Delete is the exception and removes the entry from the
// cache before the API call, restoring it if the call fails. Mirror failures
// are logged and never returned.
type EntryService interface {
	Load(ctx context.Context) ([]models.Entry, error)
	Offline(ctx context.Context) ([]models.Entry, error)
	Create(ctx context.Context, in models.EntryInput) (*CreateResult, error)
	Update(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	LoadErr() error

	Timeline(now time.Time) []timeline.Group
	Weekly(ctx context.Context, now time.Time) analytics.View
	Cached() []models.Entry
	Get(id string) (models.Entry, bool)
}

type entryService struct {
	client client.Client
	cache  *cache.EntryCache
	mirror entries.Repository
	log    logging.Logger

	mu      sync.Mutex
	loadErr error
}

func NewEntryService(c client.Client, ec *cache.EntryCache, mirror entries.Repository, log logging.Logger) EntryService {
	return &entryService{client: c, cache: ec, mirror: mirror, log: log.With("service", "entries")}
}

// Load fetches the working set. When a newer Load started meanwhile, the
// response is dropped and the current cache content returned.
func (s *entryService) Load(ctx context.Context) ([]models.Entry, error) {
	gen := s.cache.BeginFetch()

	list, err := s.client.ListEntries(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load entries: %w", err)
		s.setLoadErr(err)
		return nil, err
	}
	s.setLoadErr(nil)

	sorted := timeline.SortNewestFirst(list)
	if !s.cache.Load(gen, sorted) {
		s.log.Debug(ctx, "stale entries response dropped", "generation", gen)
		return s.cache.Entries(), nil
	}

	if err := s.mirror.ReplaceAll(ctx, sorted); err != nil {
		s.log.Warn(ctx, "mirror refresh failed", "error", err)
	}
	s.log.Debug(ctx, "entries loaded", "count", len(sorted))
	return sorted, nil
}

// Offline fills the cache from the local mirror.
func (s *entryService) Offline(ctx context.Context) ([]models.Entry, error) {
	gen := s.cache.BeginFetch()

	list, err := s.mirror.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local entries: %w", err)
	}
	if len(list) == 0 {
		return nil, client.ErrLocalDataNotAvailable
	}

	sorted := timeline.SortNewestFirst(list)
	s.cache.Load(gen, sorted)
	s.setLoadErr(nil)
	return sorted, nil
}

func (s *entryService) Create(ctx context.Context, in models.EntryInput) (*CreateResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateEntry(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("failed to create entry: %w", ErrInvalidResponse)
	}

	entry := *created
	s.cache.Insert(entry)
	s.mirrorUpsert(ctx, entry)

	res := &CreateResult{Entry: entry}

	reply, err := s.client.VibeCheck(ctx, in.Note)
	if err != nil {
		s.log.Warn(ctx, "vibe check failed", "entry", entry.ID, "error", err)
		res.VibeCheckErr = err
		return res, nil
	}

	res.AIResponse = reply
	if reply != "" {
		entry.AIResponse = reply
		res.Entry = entry
		s.cache.Replace(entry)
		s.mirrorUpsert(ctx, entry)
	}
	return res, nil
}

// Update edits an entry. The cache changes only after the API accepts the
// edit; the creation time is always taken from the cached entry.
func (s *entryService) Update(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cached, known := s.cache.Get(id)

	updated, err := s.client.UpdateEntry(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	entry := *updated
	if entry.ID == "" {
		if !known {
			return nil, fmt.Errorf("failed to update entry: %w", ErrInvalidResponse)
		}
		entry = cached.Apply(in)
	}
	if known {
		entry.ID = cached.ID
		entry.CreatedAt = cached.CreatedAt
		if entry.AIResponse == "" {
			entry.AIResponse = cached.AIResponse
		}
		if entry.Disclaimer == "" {
			entry.Disclaimer = cached.Disclaimer
		}
	}

	s.cache.Replace(entry)
	s.mirrorUpsert(ctx, entry)
	return &entry, nil
}

// Delete removes the entry from the cache at once and restores it at its
// old position if the API call fails.
func (s *entryService) Delete(ctx context.Context, id string) error {
	removed, pos, ok := s.cache.Remove(id)

	if err := s.client.DeleteEntry(ctx, id); err != nil {
		if ok {
			s.cache.Restore(removed, pos)
		}
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if err := s.mirror.DeleteByID(ctx, id); err != nil {
		s.log.Warn(ctx, "mirror delete failed", "entry", id, "error", err)
	}
	return nil
}

// Reset drops the working set and the local mirror, e.g. on logout.
func (s *entryService) Reset(ctx context.Context) error {
	s.cache.Clear()
	s.setLoadErr(nil)
	if err := s.mirror.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear local entries: %w", err)
	}
	return nil
}

// LoadErr returns the error of the last Load when it failed and no working
// set was loaded since.
func (s *entryService) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *entryService) setLoadErr(err error) {
	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
}

func (s *entryService) Timeline(now time.Time) []timeline.Group {
	return timeline.GroupByRecency(timeline.SortNewestFirst(s.cache.Entries()), now)
}

// Weekly fetches the entries afresh and derives the weekly view. It never
// falls back to the cache or the mirror.
func (s *entryService) Weekly(ctx context.Context, now time.Time) analytics.View {
	list, err := s.client.ListEntries(ctx)
	if err != nil {
		s.log.Warn(ctx, "analytics fetch failed", "error", err)
	}
	return analytics.Load(list, err, now)
}

func (s *entryService) Cached() []models.Entry {
	return s.cache.Entries()
}

func (s *entryService) Get(id string) (models.Entry, bool) {
	return s.cache.Get(id)
}

func (s *entryService) mirrorUpsert(ctx context.Context, e models.Entry) {
	if err := s.mirror.Upsert(ctx, e); err != nil {
		s.log.Warn(ctx, "mirror update failed", "entry", e.ID, "error", err)
	}
}
