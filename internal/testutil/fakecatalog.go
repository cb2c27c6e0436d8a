// Package testutil holds test doubles for the catalog service.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// APIPrefix is the path the fake serves the API under, matching the real service.
const APIPrefix = "/public/api/"

type fakeResponse struct {
	status int
	body   []byte
}

// FakeCatalog is an httptest server answering catalog endpoints with canned
// bodies and recording every path it was asked for.
type FakeCatalog struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	hits      []string
}

// NewFakeCatalog starts a fake catalog that is closed when the test ends.
func NewFakeCatalog(t *testing.T) *FakeCatalog {
	t.Helper()

	f := &FakeCatalog{responses: make(map[string]fakeResponse)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// BaseURL is the API root to hand to catalog clients.
func (f *FakeCatalog) BaseURL() string {
	return f.URL + APIPrefix
}

// Handle answers path (relative to the API root, e.g. "function/$ban")
// with body encoded as JSON.
func (f *FakeCatalog) Handle(t *testing.T, path string, body any) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal fake response for %s: %v", path, err)
	}
	f.HandleRaw(path, http.StatusOK, string(data))
}

// HandleRaw answers path with a fixed status and body.
func (f *FakeCatalog) HandleRaw(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{status: status, body: []byte(body)}
}

// Hits returns the relative paths requested so far, in order.
func (f *FakeCatalog) Hits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hits...)
}

func (f *FakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, APIPrefix)

	f.mu.Lock()
	f.hits = append(f.hits, path)
	resp, ok := f.responses[path]
	f.mu.Unlock()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}
