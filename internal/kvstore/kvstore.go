// Package kvstore provides durable string key/value storage for the
// annotation collections and the daily verse cache. Values are whole-snapshot
// serializations; Set always overwrites.
package kvstore

import "context"

// Store is the durable key/value contract. Get reports absence separately
// from failure so callers can treat a missing key as an empty collection.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// Keys in use across the service.
const (
	KeyBookmarks   = "bookmarks"
	KeySavedVerses = "savedVerses"
	KeyDailyVerse  = "dailyVerse"
)
