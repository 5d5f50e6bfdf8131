package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/intercede/internal/cooldown"
	"github.com/abelbrown/intercede/internal/logging"
	"github.com/abelbrown/intercede/internal/model"
	"github.com/abelbrown/intercede/internal/store"
)

// run executes the root command with args and returns everything it wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := execute(cmd)
	return buf.String(), err
}

// seed opens the data dir's database and hands it to fn.
func seed(t *testing.T, dataDir string, fn func(st *store.Store)) {
	t.Helper()
	st, err := store.Open(filepath.Join(dataDir, "intercede.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()
	fn(st)
}

func TestStatusFreshDataDir(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "status", "--data-dir", dir, "--api", "http://backend.test")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, out)
	}

	for _, want := range []string{"http://backend.test", "ready", "never", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestStatusDuringCooldown(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, func(st *store.Store) {
		if err := cooldown.New(st).MarkNow(); err != nil {
			t.Fatalf("MarkNow failed: %v", err)
		}
		snap := model.Snapshot{Prayers: model.Batch{{Title: "A"}, {Title: "B"}}, FetchedAt: time.Now()}
		if err := st.SaveSnapshot(snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	})

	out, err := run(t, "status", "--data-dir", dir)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "Refresh:      in ") {
		t.Errorf("expected countdown in status:\n%s", out)
	}
	if !strings.Contains(out, "2 items") {
		t.Errorf("expected snapshot size in status:\n%s", out)
	}
}

func TestResetClearsCooldown(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, func(st *store.Store) {
		if err := cooldown.New(st).MarkNow(); err != nil {
			t.Fatalf("MarkNow failed: %v", err)
		}
	})

	out, err := run(t, "reset", "--data-dir", dir)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out, "Cooldown cleared") {
		t.Errorf("unexpected reset output: %q", out)
	}

	seed(t, dir, func(st *store.Store) {
		if rem := cooldown.New(st).Remaining(); rem != 0 {
			t.Errorf("expected no cooldown after reset, got %v", rem)
		}
	})
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","message":"Intercede API is running"}`))
	}))
	defer srv.Close()

	out, err := run(t, "health", "--data-dir", t.TempDir(), "--api", srv.URL)
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if !strings.Contains(out, "healthy") || !strings.Contains(out, "Intercede API is running") {
		t.Errorf("unexpected health output:\n%s", out)
	}
}

func TestHealthReportsDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail":"warming up"}`))
	}))
	defer srv.Close()

	_, err := run(t, "health", "--data-dir", t.TempDir(), "--api", srv.URL)
	if err == nil {
		t.Fatal("expected health to fail")
	}
	if !strings.Contains(err.Error(), "warming up") {
		t.Errorf("expected backend detail in error, got %v", err)
	}
	if logging.Logger != nil {
		t.Error("log should be closed after a failed command")
	}
}

func TestPrintWithoutSnapshot(t *testing.T) {
	out, err := run(t, "print", "--data-dir", t.TempDir())
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !strings.Contains(out, noSnapshotText) {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}

func TestPrintSnapshot(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, func(st *store.Store) {
		snap := model.Snapshot{
			Prayers:   model.Batch{{Title: "Flooding in the valley", Prayer: "Lord, comfort them."}},
			FetchedAt: time.Now(),
		}
		if err := st.SaveSnapshot(snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	})

	out, err := run(t, "print", "--data-dir", dir, "--width", "120")
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	for _, want := range []string{"News 1", "Flooding in the valley", "Intercessory Prayer 1", "Lord, comfort them."} {
		if !strings.Contains(out, want) {
			t.Errorf("print output missing %q:\n%s", want, out)
		}
	}
}
