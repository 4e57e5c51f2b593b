package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/taiwoajasa245/shepherd-bible-api/internal/kvstore"
	"github.com/taiwoajasa245/shepherd-bible-api/internal/server"
	"github.com/taiwoajasa245/shepherd-bible-api/pkg/config"
)

func openStorage(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return kvstore.OpenPostgres(ctx, cfg.PostgresDSN())
	default:
		return kvstore.OpenSQLite(cfg.SQLitePath)
	}
}

func main() {
	cfg := config.LoadConfig()

	kv, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("open storage (%s): %v", cfg.StorageDriver, err)
	}
	defer kv.Close()

	srv, err := server.NewServer(kv, cfg)
	if err != nil {
		log.Fatalf("start server: %v", err)
	}

	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Shepherd Bible API listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
