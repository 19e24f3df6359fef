package internal

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/reelmd/internal/index"
)

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("Run without config should fail")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.App.HTTP.Port = 0
	cfg.Scripts.Path = filepath.Join(dir, "scripts")
	cfg.SQLite.Path = filepath.Join(dir, "reelmd.db")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var logs bytes.Buffer
	if err := Run(ctx, WithConfig(cfg), WithLogOutput(&logs)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(logs.String(), "Server stopped successfully") {
		t.Errorf("logs = %s", logs.String())
	}
}

func TestScriptEvent(t *testing.T) {
	e := &index.Entry{Row: index.ScriptRow{SceneCount: 2, Duration: 7, Errors: 1}}
	ev := scriptEvent(index.EventUpdated, "a.md", e)
	if ev.Kind != "updated" || ev.Path != "a.md" || ev.SceneCount != 2 || ev.Errors != 1 {
		t.Errorf("event = %+v", ev)
	}
	if ev := scriptEvent(index.EventDeleted, "a.md", nil); ev.SceneCount != 0 || ev.Kind != "deleted" {
		t.Errorf("delete event = %+v", ev)
	}
}
