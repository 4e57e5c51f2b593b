// Package dailyverse caches the remote "verse of the day": one persisted
// record, refreshed at most once per calendar day, with offline fallback to
// the last cached value and a built-in default when nothing was ever cached.
package dailyverse

import "time"

// Record is the singleton daily-verse slot. Date is the local calendar day
// the record was fetched for; the record is reusable only while Date equals
// the current day.
type Record struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Theme     string `json:"theme,omitempty"`
	Date      string `json:"date"`
}

// Status classifies how Get satisfied the request.
type Status string

const (
	// StatusFresh means the record is for today (cache hit or fetched now).
	StatusFresh Status = "fresh"
	// StatusStale means the fetch failed and an older cached record was
	// returned.
	StatusStale Status = "stale"
	// StatusDefault means nothing was ever cached and the built-in verse
	// was returned.
	StatusDefault Status = "default"
)

// DefaultRecord is the fixed fallback so the home screen always has
// something renderable, even on first launch with no network.
var DefaultRecord = Record{
	Text:      "I can do all things through Christ who strengthens me.",
	Reference: "Philippians 4:13",
}

// DayID formats t as the calendar-day identifier stored on records.
func DayID(t time.Time) string {
	return t.Format("2006-01-02")
}
