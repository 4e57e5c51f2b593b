package dailyverse

import (
	"net/http"
	"time"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/annotations"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
	"github.com/taiwoajasa245/shepherd-bible-api/pkg/response"
)

type Handler struct {
	cache     *Cache
	bookmarks *annotations.Store
	now       func() time.Time
}

func NewHandler(cache *Cache, bookmarks *annotations.Store) Handler {
	return Handler{cache: cache, bookmarks: bookmarks, now: time.Now}
}

func (h *Handler) GetDailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	record, status := h.cache.Get(r.Context(), DayID(h.now()))

	message := "successfully"
	switch status {
	case StatusStale:
		message = "showing cached verse (offline)"
	case StatusDefault:
		message = "showing default verse (offline, nothing cached)"
	}

	response.SuccessWithMeta(w, record, message, map[string]interface{}{
		"status":     status,
		"bookmarked": h.bookmarks.Contains(record.Reference),
	})
}

// BookmarkDailyVerseHandler toggles today's verse in the bookmarks
// collection. This is the same collection and storage key the reader uses;
// the daily verse gets no private bookmark list.
func (h *Handler) BookmarkDailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	record, status := h.cache.Get(r.Context(), DayID(h.now()))

	book, chapter, number, err := bible.ParseReference(record.Reference)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to bookmark daily verse", err.Error())
		return
	}

	verse := bible.Verse{
		Book:      book,
		Chapter:   chapter,
		Number:    number,
		Text:      record.Text,
		Reference: record.Reference,
	}

	entries, added, persistErr := h.bookmarks.Toggle(r.Context(), verse)

	message := "successfully"
	if persistErr != nil {
		message = "saved in memory; storage write failed"
	}

	response.SuccessWithMeta(w, map[string]interface{}{
		"added":     added,
		"reference": verse.Reference,
		"count":     len(entries),
	}, message, map[string]interface{}{
		"status": status,
	})
}
