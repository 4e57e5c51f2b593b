// Package annotations manages the user's bookmark and saved-verse
// collections: in-memory sets keyed by verse reference, written through to
// durable storage as whole-collection JSON snapshots.
package annotations

import (
	"time"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
)

// Entry is one bookmarked or saved verse. Identity is the embedded verse's
// Reference; Timestamp records when the user added it (epoch millis).
type Entry struct {
	bible.Verse
	Timestamp int64 `json:"timestamp"`
}

// NewEntry builds an Entry for the verse, stamped now.
func NewEntry(v bible.Verse) Entry {
	return Entry{Verse: v, Timestamp: time.Now().UnixMilli()}
}
