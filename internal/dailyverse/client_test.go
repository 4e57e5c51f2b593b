package dailyverse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/daily-verse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"success": true,
			"data": {
				"text": "The LORD is my shepherd; I shall not want.",
				"reference": "Psalm 23:1",
				"theme": "trust"
			}
		}`))
	}))
	defer srv.Close()

	record, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Psalm 23:1", record.Reference)
	assert.Equal(t, "trust", record.Theme)
}

func TestClient_FetchFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "failure envelope", body: `{"success":false,"message":"no verse today"}`, code: 200},
		{name: "malformed json", body: `{"success":true,"data":`, code: 200},
		{name: "missing fields", body: `{"success":true,"data":{"theme":"hope"}}`, code: 200},
		{name: "server error", body: `oops`, code: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}
