package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/annotations"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/bible"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/dailyverse"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/kvstore"
	"github.com/taiwoajasa245/shepherd-bible-api/pkg/config"
)

type Server struct {
	port    string
	kv      kvstore.Store
	handler http.Handler
	cfg     *config.Config

	bibleService *bible.Service
	bookmarks    *annotations.Store
	saved        *annotations.Store
	dailyCache   *dailyverse.Cache

	cancel context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(kv kvstore.Store, cfg *config.Config) (*Server, error) {
	ctx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := kv.Ping(ctx); err != nil {
		return nil, fmt.Errorf("storage connection failed: %w", err)
	}
	log.Println("Storage connection successful")

	store, err := bible.NewStore()
	if err != nil {
		return nil, fmt.Errorf("load scripture dataset: %w", err)
	}
	log.Printf("Loaded translations: %v", store.Versions())

	bookmarks := annotations.NewBookmarks(kv)
	saved := annotations.NewSavedVerses(kv)

	// Hydrate the collections before taking traffic; a failed load degrades
	// to empty collections inside Load.
	bookmarks.Load(ctx)
	saved.Load(ctx)

	bibleService := bible.NewService(store, bookmarks, saved)
	dailyCache := dailyverse.NewCache(kv, dailyverse.NewClient(cfg.DailyVerseURL))

	s := &Server{
		port:         cfg.Port,
		kv:           kv,
		cfg:          cfg,
		bibleService: bibleService,
		bookmarks:    bookmarks,
		saved:        saved,
		dailyCache:   dailyCache,
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	interval := time.Hour
	if config.GetAppEnv() == "production" {
		interval = 24 * time.Hour
	}

	go s.dailyCache.StartRefresher(ctx, interval)
	log.Println("Daily verse refresher started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
