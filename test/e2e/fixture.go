// Package e2e drives the whole client against a fake backend.
package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/intercede/internal/model"
)

// fixtureBatch is the deterministic batch the fake backend serves.
var fixtureBatch = model.Batch{
	{
		Title:      "Fixture Headline One",
		Link:       "https://news.example.com/one",
		Source:     "Fixture Wire",
		Published:  "Wed, 14 Oct 2026 08:30:00 GMT",
		ESVVerse:   "Cast all your anxieties on him, because he cares for you.",
		Reflection: "A short reflection.",
		Prayer:     "Lord, be near to those affected.",
	},
	{
		Title:  "Fixture Headline Two",
		Prayer: "Father, grant wisdom to leaders.",
	},
}

// backend is a fake Intercede API. status and detail, when set, make
// /api/prayers fail.
type backend struct {
	srv    *httptest.Server
	calls  atomic.Int32
	status atomic.Int32
	detail atomic.Value
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/prayers", func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if code := int(b.status.Load()); code != 0 {
			w.WriteHeader(code)
			detail, _ := b.detail.Load().(string)
			json.NewEncoder(w).Encode(map[string]string{"detail": detail})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"prayers": fixtureBatch})
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","message":"fixture"}`))
	})
	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) fail(code int, detail string) {
	b.detail.Store(detail)
	b.status.Store(int32(code))
}

func (b *backend) URL() string { return b.srv.URL }

// clock is a settable clock shared by the cooldown and the UI.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// collect runs cmd and every command batched inside it, returning the
// messages they produce. Ticks block for their interval, so each command
// runs on its own goroutine.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	out := make(chan tea.Msg, 16)
	var pending atomic.Int32
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		pending.Add(1)
		go func() {
			defer pending.Add(-1)
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					if sub != nil {
						run(sub)
					}
				}
				return
			}
			if msg != nil {
				out <- msg
			}
		}()
	}
	run(cmd)

	var msgs []tea.Msg
	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-out:
			msgs = append(msgs, msg)
		case <-time.After(20 * time.Millisecond):
			if pending.Load() == 0 && len(out) == 0 {
				return msgs
			}
		case <-deadline:
			t.Fatalf("commands did not settle; got %d messages", len(msgs))
		}
	}
}
