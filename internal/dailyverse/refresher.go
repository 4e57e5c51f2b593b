package dailyverse

import (
	"context"
	"log"
	"time"
)

// StartRefresher keeps the cache warm so the first request after midnight
// does not pay for the fetch. It runs until ctx is cancelled.
// - In dev the interval is short so a stale endpoint shows up quickly.
// - In prod the caller passes 24h to match the daily cadence.
func (c *Cache) StartRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("daily verse refresher started (%s interval)", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("daily verse refresher stopped gracefully")
			return
		case <-ticker.C:
			_, status := c.Get(ctx, DayID(time.Now()))
			log.Printf("daily verse refresh: %s", status)
		}
	}
}
