//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const helloBody = `[{
  "word": "hello",
  "phonetic": "/həˈləʊ/",
  "phonetics": [{"text": "/həˈləʊ/", "audio": ""}],
  "meanings": [{
    "partOfSpeech": "exclamation",
    "definitions": [{"definition": "Used as a greeting.", "synonyms": ["hi","howdy"], "antonyms": []}]
  }]
}]`

const worldBody = `[{
  "word": "world",
  "meanings": [{
    "partOfSpeech": "noun",
    "definitions": [{"definition": "The earth, together with all of its countries.", "example": "he was doing his bit to save the world"}]
  }]
}]`

// fakeDictionary serves canned entries and records requested paths
type fakeDictionary struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
}

func newFakeDictionary(t *testing.T) *fakeDictionary {
	t.Helper()
	d := &fakeDictionary{}
	d.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.mu.Lock()
		d.paths = append(d.paths, r.URL.Path)
		d.mu.Unlock()

		word := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch word {
		case "hello":
			w.Write([]byte(helloBody))
		case "world":
			w.Write([]byte(worldBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"title":"No Definitions Found"}`))
		}
	}))
	t.Cleanup(d.Close)
	return d
}

func (d *fakeDictionary) Paths() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paths...)
}

// launch points the app at the fake dictionary and waits for the first frame
func launch(t *testing.T, app *App, d *fakeDictionary, args ...string) {
	t.Helper()
	app.Setenv("WORDGRIP_API_BASE_URL=" + d.URL + "/api/v2/entries/en")
	if err := app.Start(args...); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	waitReady(t, app)
}

func waitReady(t *testing.T, app *App) {
	t.Helper()
	if !app.Eventually(func(s string) bool { return strings.Contains(s, "wordgrip") }, 12*time.Second) {
		app.Tail(2048)
		t.Fatal("app did not render")
	}
}
