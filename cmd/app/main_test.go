package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const script = "!scene\n!chapter \"Intro\"\n!text\nHello\nWorld\n---\n!scene\n!duration 4\n!code go\n```go\nfmt.Println(1)\n```\n"

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(context.Background(), append([]string{"reelmd"}, args...))
	return out.String(), err
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := runApp(t, script, "parse", "-")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var doc struct {
		Scenes   []struct{ Type string } `json:"scenes"`
		Chapters []struct{ Title string } `json:"chapters"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(doc.Scenes) != 2 || doc.Scenes[1].Type != "code" {
		t.Errorf("scenes = %+v", doc.Scenes)
	}
	if len(doc.Chapters) != 1 || doc.Chapters[0].Title != "Intro" {
		t.Errorf("chapters = %+v", doc.Chapters)
	}
}

func TestParseCommand_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, "", "parse", "--format", "yaml", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"scenes:", "type: code", "content: |-", "title: Intro"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	if _, err := runApp(t, script, "parse", "--format", "xml", "-"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := runApp(t, script, "validate", "-")
	if err != nil {
		t.Fatalf("valid script: %v\n%s", err, out)
	}

	out, err = runApp(t, "!scene\n!transition spin\n", "validate", "-")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("err = %v, want errInvalid", err)
	}
	if !strings.Contains(out, `"valid": false`) {
		t.Errorf("output = %s", out)
	}
}

func TestCheckAndSuggestCommands(t *testing.T) {
	out, err := runApp(t, "!scene\n```js\nx\n", "check", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Unclosed code block") {
		t.Errorf("check output = %s", out)
	}

	out, err = runApp(t, "", "suggest", "-")
	if err != nil {
		t.Fatal(err)
	}
	var sug []string
	if err := json.Unmarshal([]byte(out), &sug); err != nil || len(sug) == 0 {
		t.Errorf("suggest output = %s (%v)", out, err)
	}
}

func TestTimelineCommand(t *testing.T) {
	out, err := runApp(t, script, "timeline", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"totalDuration": 7`) {
		t.Errorf("timeline output = %s", out)
	}

	out, err = runApp(t, script, "timeline", "--at", "3.5", "-")
	if err != nil {
		t.Fatal(err)
	}
	var pos struct {
		Index     int     `json:"index"`
		SceneTime float64 `json:"sceneTime"`
	}
	_ = json.Unmarshal([]byte(out), &pos)
	if pos.Index != 1 || pos.SceneTime != 0.5 {
		t.Errorf("position = %+v, want index 1 at 0.5s", pos)
	}

	if _, err := runApp(t, script, "timeline", "--at", "60", "-"); err == nil {
		t.Error("expected error past the end")
	}
}

func TestIndexCommand(t *testing.T) {
	dir := t.TempDir()
	scripts := filepath.Join(dir, "scripts")
	if err := os.MkdirAll(filepath.Join(scripts, "talks"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.md", "talks/b.reel"} {
		if err := os.WriteFile(filepath.Join(scripts, name), []byte(script), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	db := filepath.Join(dir, "catalog.db")
	cfg := filepath.Join(dir, "missing.yaml")

	out, err := runApp(t, "", "--config", cfg, "index", "--db", db, scripts)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	var stats map[string]int
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatal(err)
	}
	if stats["indexed"] != 2 {
		t.Errorf("stats = %v, want 2 indexed", stats)
	}

	out, err = runApp(t, "", "--config", cfg, "index", "--db", db, scripts)
	if err != nil {
		t.Fatal(err)
	}
	_ = json.Unmarshal([]byte(out), &stats)
	if stats["unchanged"] != 2 || stats["indexed"] != 0 {
		t.Errorf("second run stats = %v, want 2 unchanged", stats)
	}
}
