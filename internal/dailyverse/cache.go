package dailyverse

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/kvstore"
)

// Cache is the single daily-verse slot over durable storage. Get never
// fails: it degrades through cached and default values, reporting how the
// result was obtained via Status.
type Cache struct {
	kv     kvstore.Store
	source Source

	// Serializes Get so a request racing the background refresher does not
	// trigger a double fetch.
	mu sync.Mutex
}

func NewCache(kv kvstore.Store, source Source) *Cache {
	return &Cache{kv: kv, source: source}
}

// Get returns the verse for todayID.
//
// Order of preference: a persisted record for today (no network), a fresh
// fetch (persisted wholesale on success), the last persisted record of any
// date (stale), and finally the built-in default.
func (c *Cache) Get(ctx context.Context, todayID string) (Record, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, hasCached := c.load(ctx)
	if hasCached && cached.Date == todayID {
		return cached, StatusFresh
	}

	fetched, err := c.source.Fetch(ctx)
	if err == nil {
		fetched.Date = todayID
		c.persist(ctx, fetched)
		return fetched, StatusFresh
	}
	log.Printf("daily verse fetch: %v", err)

	if hasCached {
		return cached, StatusStale
	}
	return DefaultRecord, StatusDefault
}

func (c *Cache) load(ctx context.Context) (Record, bool) {
	raw, ok, err := c.kv.Get(ctx, kvstore.KeyDailyVerse)
	if err != nil {
		log.Printf("loading daily verse: %v", err)
		return Record{}, false
	}
	if !ok {
		return Record{}, false
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Printf("decoding daily verse: %v", err)
		return Record{}, false
	}
	return record, true
}

// persist replaces the slot wholesale; a failure is logged and the fetched
// record is still served for this request.
func (c *Cache) persist(ctx context.Context, record Record) {
	raw, err := json.Marshal(record)
	if err != nil {
		log.Printf("encoding daily verse: %v", err)
		return
	}
	if err := c.kv.Set(ctx, kvstore.KeyDailyVerse, string(raw)); err != nil {
		log.Printf("persisting daily verse: %v", err)
	}
}
