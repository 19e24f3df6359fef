package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_JSONDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(&buf, Options{Level: slog.LevelInfo})
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("sync: indexed", slog.String("path", "a.md"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["msg"] != "sync: indexed" || rec["path"] != "a.md" {
		t.Errorf("record = %v", rec)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(&buf, Options{Level: slog.LevelDebug, Format: "TEXT"})
	defer closer.Close()

	logger.Debug("watcher: started", slog.String("root", "/tmp"))
	if got := buf.String(); !strings.Contains(got, `msg="watcher: started"`) || !strings.Contains(got, "root=/tmp") {
		t.Errorf("output = %q", got)
	}
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "reelmd.log")
	logger, closer := New(&buf, Options{Level: slog.LevelInfo, File: path})

	logger.Warn("sync: read failed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "sync: read failed") {
		t.Errorf("file = %q", data)
	}
	if !strings.Contains(buf.String(), "sync: read failed") {
		t.Errorf("stdout copy missing: %q", buf.String())
	}
}
