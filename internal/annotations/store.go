package annotations

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/kvstore"
)

// Store is one annotation collection (bookmarks or saved verses). The
// in-memory state is the source of truth for the session; every mutation is
// written through to durable storage as a full snapshot, and a failed write
// is logged rather than rolled back.
//
// Entries keep insertion order for display; the reference set enforces that
// a reference appears at most once.
type Store struct {
	key string
	kv  kvstore.Store

	mu      sync.Mutex
	entries []Entry
	present map[string]struct{}
}

// NewBookmarks returns the store for the canonical bookmarks collection.
func NewBookmarks(kv kvstore.Store) *Store {
	return NewStore(kv, kvstore.KeyBookmarks)
}

// NewSavedVerses returns the store for the saved-verses collection.
func NewSavedVerses(kv kvstore.Store) *Store {
	return NewStore(kv, kvstore.KeySavedVerses)
}

func NewStore(kv kvstore.Store, key string) *Store {
	return &Store{
		key:     key,
		kv:      kv,
		present: make(map[string]struct{}),
	}
}

// Load replaces the in-memory collection with the persisted snapshot. An
// absent key is an empty collection; storage or decode failures degrade to
// empty with a logged diagnostic, never an error to the caller.
func (s *Store) Load(ctx context.Context) []Entry {
	var entries []Entry

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Printf("loading %s: %v", s.key, err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			log.Printf("decoding %s snapshot: %v", s.key, err)
			entries = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.present = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		s.present[e.Reference] = struct{}{}
	}
	return s.snapshotLocked()
}

// Toggle is the sole mutation primitive: remove the entry when present,
// insert a fresh one when absent. It returns the resulting collection and
// whether the verse was added. The write-through persist serializes the
// state as it stands after this mutation (re-read under the lock, not
// captured at call time); a persist failure is returned for reporting but
// the in-memory mutation stands.
func (s *Store) Toggle(ctx context.Context, v bible.Verse) ([]Entry, bool, error) {
	s.mu.Lock()

	var added bool
	if _, exists := s.present[v.Reference]; exists {
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.Reference != v.Reference {
				kept = append(kept, e)
			}
		}
		s.entries = kept
		delete(s.present, v.Reference)
	} else {
		s.entries = append(s.entries, NewEntry(v))
		s.present[v.Reference] = struct{}{}
		added = true
	}

	entries := s.snapshotLocked()
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	if err != nil {
		log.Printf("persisting %s: %v", s.key, err)
	}
	return entries, added, err
}

// Contains reports whether a reference is in the collection.
func (s *Store) Contains(reference string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.present[reference]
	return ok
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Persist writes the current in-memory collection to durable storage,
// replacing any prior value.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("write %s snapshot: %w", s.key, err)
	}
	return nil
}

func (s *Store) snapshotLocked() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
