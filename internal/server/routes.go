package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/annotations"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/dailyverse"
	"github.com/taiwoajasa245/shepherd-bible-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)
	r.Get("/healthz", s.HealthHandler)

	r.Route("/bible-api/v1", func(r chi.Router) {
		s.loadBibleRoutes(r)
		s.loadAnnotationRoutes(r)
		s.loadDailyVerseRoutes(r)
	})
	r.Get("/bible-api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Shepherd Bible api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"storage": "up"}
	if err := s.kv.Ping(ctx); err != nil {
		status["storage"] = "down"
		response.Error(w, http.StatusServiceUnavailable, "Storage unreachable", err.Error())
		return
	}
	response.Success(w, status, "Success")
}

func (s *Server) loadBibleRoutes(router chi.Router) {
	bibleHandler := bible.NewHandler(s.bibleService)

	router.Get("/bible/versions", bibleHandler.ListVersionsHandler)
	router.Get("/bible/{version}/books", bibleHandler.ListBooksHandler)
	router.Get("/bible/{version}/search", bibleHandler.SearchHandler)
	router.Get("/bible/{version}/{book}/{chapter}", bibleHandler.GetChapterHandler)
	router.Get("/bible/{version}/{book}/{chapter}/navigate", bibleHandler.NavigateHandler)
}

func (s *Server) loadAnnotationRoutes(router chi.Router) {
	annotationHandler := annotations.NewHandler(s.bookmarks, s.saved, s.bibleService)

	router.Get("/annotations/{collection}", annotationHandler.ListHandler)
	router.Patch("/annotations/{collection}/toggle", annotationHandler.ToggleHandler)
}

func (s *Server) loadDailyVerseRoutes(router chi.Router) {
	dailyHandler := dailyverse.NewHandler(s.dailyCache, s.bookmarks)

	router.Get("/daily-verse", dailyHandler.GetDailyVerseHandler)
	router.Post("/daily-verse/bookmark", dailyHandler.BookmarkDailyVerseHandler)
}
