package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServerServesIndex(t *testing.T) {
	srv := NewServer(NewHub())
	ts := httptest.NewServer(srv.mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "redsim") {
		t.Error("index page should mention redsim")
	}
}

func TestServerResultsEndpoint(t *testing.T) {
	hub := NewHub()
	hub.Reset()
	hub.Publish(record(50))

	srv := NewServer(hub)
	ts := httptest.NewServer(srv.mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/results")
	if err != nil {
		t.Fatalf("GET /api/results: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Running bool              `json:"running"`
		Records []json.RawMessage `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Running {
		t.Error("run in progress should report running")
	}
	if len(payload.Records) != 1 {
		t.Errorf("expected 1 record, got %d", len(payload.Records))
	}
}

func TestServerUnknownPathIs404(t *testing.T) {
	srv := NewServer(NewHub())
	ts := httptest.NewServer(srv.mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status %d, want 404", resp.StatusCode)
	}
}
