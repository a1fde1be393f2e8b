// Package cache holds the client's garden query results. Each query key
// (page size plus author filter) maps to the pages fetched for it. Values
// handed out by the Store are copies; changes go back through Set or Update
// with one of the pure patch functions in this package.
package cache

import (
	"sync"

	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/validation"
)

// QueryKey identifies one garden query. The cursor is not part of the key:
// all pages of one query live in the same Entry.
type QueryKey struct {
	Limit      int
	AuthorName string
}

// KeyFor derives the key of q.
func KeyFor(q validation.GardenQuery) QueryKey {
	k := QueryKey{Limit: q.Limit}
	if q.Where != nil && q.Where.Author != nil {
		k.AuthorName = q.Where.Author.Name
	}
	return k
}

// Query rebuilds the first-page query for k.
func (k QueryKey) Query() validation.GardenQuery {
	q := validation.GardenQuery{Limit: k.Limit}
	if k.AuthorName != "" {
		q.Where = &validation.Where{Author: &validation.AuthorWhere{Name: k.AuthorName}}
	}
	return q
}

// Entry is the cached result of one query: its pages in fetch order.
// Stale entries are still readable but should be refetched.
type Entry struct {
	Pages []models.Page
	Stale bool
}

// Seeds flattens all pages in fetch order.
func (e Entry) Seeds() []models.Seed {
	n := 0
	for _, p := range e.Pages {
		n += len(p.Seeds)
	}
	out := make([]models.Seed, 0, n)
	for _, p := range e.Pages {
		out = append(out, p.Seeds...)
	}
	return out
}

// NextCursor is the cursor of the last fetched page, empty when there is
// nothing more to load or nothing was fetched yet.
func (e Entry) NextCursor() string {
	if len(e.Pages) == 0 {
		return ""
	}
	return e.Pages[len(e.Pages)-1].NextCursor
}

// Exhausted reports whether the last page closed the feed.
func (e Entry) Exhausted() bool {
	return len(e.Pages) > 0 && e.NextCursor() == ""
}

func (e Entry) clone() Entry {
	out := Entry{Stale: e.Stale, Pages: make([]models.Page, len(e.Pages))}
	for i, p := range e.Pages {
		out.Pages[i] = models.Page{
			Seeds:      append([]models.Seed(nil), p.Seeds...),
			NextCursor: p.NextCursor,
		}
	}
	return out
}

// Store is a mutex guarded map from QueryKey to Entry.
type Store struct {
	mu      sync.RWMutex
	entries map[QueryKey]Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[QueryKey]Entry)}
}

// Get returns a copy of the entry for key.
func (s *Store) Get(key QueryKey) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Set replaces the entry for key.
func (s *Store) Set(key QueryKey, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = e.clone()
}

// Update replaces the entry for key with fn applied to a copy of it.
// It reports false, and does nothing, when key is not cached.
func (s *Store) Update(key QueryKey, fn func(Entry) Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.entries[key] = fn(e.clone()).clone()
	return true
}

// Invalidate marks every cached entry stale.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		e.Stale = true
		s.entries[k] = e
	}
}

// Delete drops the entry for key.
func (s *Store) Delete(key QueryKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Clear drops every entry, e.g. on logout since like state is per viewer.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[QueryKey]Entry)
}
