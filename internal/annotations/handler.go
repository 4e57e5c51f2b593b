package annotations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
	"github.com/taiwoajasa245/shepherd-bible-api/pkg/response"
)

type ToggleRequest struct {
	Version string `json:"version"`
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
	Verse   int    `json:"verse"`
}

type Handler struct {
	bookmarks *Store
	saved     *Store
	bible     *bible.Service
}

func NewHandler(bookmarks, saved *Store, bibleService *bible.Service) Handler {
	return Handler{bookmarks: bookmarks, saved: saved, bible: bibleService}
}

func (h *Handler) collectionFor(name string) (*Store, bool) {
	switch name {
	case "bookmarks":
		return h.bookmarks, true
	case "saved":
		return h.saved, true
	}
	return nil, false
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := h.collectionFor(chi.URLParam(r, "collection"))
	if !ok {
		response.Error(w, http.StatusNotFound, "Unknown collection", "collection must be 'bookmarks' or 'saved'")
		return
	}

	entries := store.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	response.Success(w, entries, "successfully")
}

func (h *Handler) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := h.collectionFor(chi.URLParam(r, "collection"))
	if !ok {
		response.Error(w, http.StatusNotFound, "Unknown collection", "collection must be 'bookmarks' or 'saved'")
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Version == "" || req.Book == "" || req.Chapter == "" || req.Verse == 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"version": "version is required",
			"book":    "book is required",
			"chapter": "chapter is required",
			"verse":   "verse is required",
		})
		return
	}

	verse, found, err := h.bible.Resolve(req.Version, req.Book, req.Chapter, req.Verse)
	if err != nil {
		if errors.Is(err, bible.ErrVersionNotFound) {
			response.Error(w, http.StatusNotFound, "Version not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to resolve verse", err.Error())
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "Verse not found", map[string]string{
			"verse": bible.MakeReference(req.Book, req.Chapter, req.Verse) + " is not in this translation",
		})
		return
	}

	entries, added, persistErr := store.Toggle(r.Context(), verse)

	message := "successfully"
	if persistErr != nil {
		// The in-memory mutation stands; storage will catch up on the next
		// successful write.
		message = "saved in memory; storage write failed"
	}

	response.Success(w, map[string]interface{}{
		"added":     added,
		"reference": verse.Reference,
		"count":     len(entries),
	}, message)
}
