package dailyverse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Source fetches today's verse from the remote endpoint. Split out as an
// interface so the cache can be tested with a fake.
type Source interface {
	Fetch(ctx context.Context) (Record, error)
}

// Client fetches from the daily-verse HTTP endpoint. The endpoint wraps its
// payload in the usual success/data envelope and needs no authentication.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch performs GET {base}/api/daily-verse. Transport failures and
// malformed responses are both fetch failures to the caller; only the error
// text differs.
func (c *Client) Fetch(ctx context.Context) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/daily-verse", nil)
	if err != nil {
		return Record{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("daily verse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Record{}, fmt.Errorf("daily verse endpoint returned %s", resp.Status)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    Record `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Record{}, fmt.Errorf("malformed daily verse response: %w", err)
	}
	if !envelope.Success {
		return Record{}, fmt.Errorf("daily verse endpoint reported failure: %s", envelope.Message)
	}
	if envelope.Data.Text == "" || envelope.Data.Reference == "" {
		return Record{}, fmt.Errorf("malformed daily verse response: missing text or reference")
	}
	return envelope.Data, nil
}
