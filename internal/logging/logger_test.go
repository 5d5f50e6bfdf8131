package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestHelpersNoopBeforeInit(t *testing.T) {
	prev := Logger
	Logger = nil
	defer func() { Logger = prev }()

	// Must not panic
	Info("hello", "k", "v")
	Debug("hello")
	Warn("hello")
	Error("hello")
	// Discarding logger, safe to call
	WithPrefix("x").Info("hello")
}

func TestWithPrefix(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	var buf bytes.Buffer
	SetOutput(&buf, log.InfoLevel)

	WithPrefix("fetch").Info("settled", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "fetch") || !strings.Contains(out, "count=3") {
		t.Errorf("expected prefixed line, got %q", out)
	}
}

func TestCloseDetachesLogger(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	if err := Init(t.TempDir(), "info"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Close()
	if Logger != nil {
		t.Error("Close should detach the global logger")
	}
	// Must not write to the closed file
	Info("after close")
}

func TestSetOutputRespectsLevel(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	var buf bytes.Buffer
	SetOutput(&buf, log.WarnLevel)

	Info("quiet message")
	Warn("loud message", "status", 503)

	out := buf.String()
	if strings.Contains(out, "quiet message") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "loud message") || !strings.Contains(out, "status=503") {
		t.Errorf("expected warn line with keyvals, got %q", out)
	}
}

func TestInitCreatesDatedFile(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	dir := t.TempDir()
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Close()

	path := filepath.Join(dir, "logs", "intercede-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "Intercede started") {
		t.Errorf("expected startup line, got %q", data)
	}
}
