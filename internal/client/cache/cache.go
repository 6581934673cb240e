// Package cache holds the client's in-memory working set of journal entries.
package cache

import (
	"sync"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// EntryCache is the ordered working set of entries, newest first. It is safe
// for concurrent use.
//
// Fetches are tagged with a generation: only the response of the most recent
// BeginFetch may replace the working set, so a slow stale response cannot
// overwrite a newer one.
type EntryCache struct {
	mu      sync.RWMutex
	entries []models.Entry
	gen     uint64
	loaded  bool
}

// NewEntryCache returns an empty cache ready for use.
func NewEntryCache() *EntryCache {
	return &EntryCache{}
}

// BeginFetch starts a new fetch generation and returns its token.
func (c *EntryCache) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// Load replaces the working set with entries if gen is still the latest
// generation. It reports whether the entries were accepted.
func (c *EntryCache) Load(gen uint64, entries []models.Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.entries = append([]models.Entry(nil), entries...)
	c.loaded = true
	return true
}

// Clear empties the cache and invalidates fetches in flight.
func (c *EntryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.entries = nil
	c.loaded = false
}

// Loaded reports whether a fetch has completed at least once.
func (c *EntryCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *EntryCache) indexOf(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Insert puts a newly created entry at the front. An entry with the same id
// is replaced in place instead.
func (c *EntryCache) Insert(e models.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(e.ID); i >= 0 {
		c.entries[i] = e
		return
	}
	c.entries = append([]models.Entry{e}, c.entries...)
}

// Replace swaps the entry with the same id. It returns false when no such
// entry is cached.
func (c *EntryCache) Replace(e models.Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(e.ID)
	if i < 0 {
		return false
	}
	c.entries[i] = e
	return true
}

// Remove deletes the entry with the given id and returns it together with
// its former position, for use with Restore.
func (c *EntryCache) Remove(id string) (models.Entry, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.Entry{}, -1, false
	}
	e := c.entries[i]
	c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
	return e, i, true
}

// Restore reinserts a removed entry at pos, clamped to the current length.
// It is a no-op if an entry with the same id is already cached.
func (c *EntryCache) Restore(e models.Entry, pos int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(e.ID) >= 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.entries) {
		pos = len(c.entries)
	}
	out := make([]models.Entry, 0, len(c.entries)+1)
	out = append(out, c.entries[:pos]...)
	out = append(out, e)
	out = append(out, c.entries[pos:]...)
	c.entries = out
}

// Entries returns a copy of the working set in cache order.
func (c *EntryCache) Entries() []models.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Entry(nil), c.entries...)
}

// Get returns the cached entry with the given id.
func (c *EntryCache) Get(id string) (models.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.entries[i], true
	}
	return models.Entry{}, false
}

// Len returns the number of cached entries.
func (c *EntryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
