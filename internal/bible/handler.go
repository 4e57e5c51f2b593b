package bible

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taiwoajasa245/shepherd-bible-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

func (h *Handler) ListVersionsHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"versions": h.service.Versions(),
	}, "successfully")
}

func (h *Handler) ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")

	groups, err := h.service.Books(version)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			response.Error(w, http.StatusNotFound, "Version not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to list books", err.Error())
		return
	}

	response.Success(w, groups, "successfully")
}

func (h *Handler) GetChapterHandler(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	book := chi.URLParam(r, "book")
	chapter := chi.URLParam(r, "chapter")

	verses, err := h.service.Chapter(version, book, chapter)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			response.Error(w, http.StatusNotFound, "Version not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to load chapter", err.Error())
		return
	}

	// Missing book/chapter is "nothing to show", not a failure.
	if verses == nil {
		verses = []AnnotatedVerse{}
	}

	response.Success(w, map[string]interface{}{
		"version": version,
		"book":    book,
		"chapter": chapter,
		"verses":  verses,
	}, "successfully")
}

func (h *Handler) NavigateHandler(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	book := chi.URLParam(r, "book")
	chapter := chi.URLParam(r, "chapter")
	dir := r.URL.Query().Get("dir")

	if dir != DirPrev && dir != DirNext {
		response.Error(w, http.StatusBadRequest, "Invalid direction", map[string]string{
			"dir": "dir must be 'prev' or 'next'",
		})
		return
	}

	target, err := h.service.Navigate(version, book, chapter, dir)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			response.Error(w, http.StatusNotFound, "Version not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to navigate", err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"version": version,
		"book":    book,
		"chapter": target,
	}, "successfully")
}

func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	query := r.URL.Query().Get("q")

	results, err := h.service.Search(version, query)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			response.Error(w, http.StatusNotFound, "Version not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to search", err.Error())
		return
	}

	if results == nil {
		results = []AnnotatedVerse{}
	}

	response.Success(w, map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	}, "successfully")
}
