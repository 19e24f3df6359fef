package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/reelmd/internal/apperr"
)

func tempScripts(t *testing.T) *FS {
	t.Helper()
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempScripts(t)
	content := []byte("!scene\n!text\nHello\n")
	if err := s.Write("intro.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("intro.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestWriteCreatesSubdirs(t *testing.T) {
	s := tempScripts(t)
	if err := s.Write("course/week1/demo.md", []byte("!scene")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Read("course/week1/demo.md"); err != nil {
		t.Fatalf("Read: %v", err)
	}
}

func TestReadMissingIsNotFound(t *testing.T) {
	s := tempScripts(t)
	_, err := s.Read("missing.md")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist in chain", err)
	}
}

func TestDeleteAndMove(t *testing.T) {
	s := tempScripts(t)
	_ = s.Write("old.md", []byte("!scene"))
	if err := s.Move("old.md", "sub/new.md"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if _, err := s.Read("old.md"); err == nil {
		t.Error("old path should not exist")
	}
	if err := s.Delete("sub/new.md"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("sub/new.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := tempScripts(t)
	_ = s.Write("a.md", []byte("a"))
	_ = s.Write("sub/b.reel", []byte("b"))
	_ = s.Write("readme.txt", []byte("not a script"))
	_ = s.Write(".git/c.md", []byte("hidden"))

	items, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Path == "a.md" && it.Checksum != Checksum([]byte("a")) {
			t.Errorf("checksum = %q", it.Checksum)
		}
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempScripts(t)
	for _, p := range []string{"../../etc/passwd", "../outside.md", "/etc/shadow"} {
		if _, err := s.Read(p); !errors.Is(err, apperr.ErrInvalidPath) {
			t.Errorf("Read(%q) err = %v, want ErrInvalidPath", p, err)
		}
		if err := s.Write(p, []byte("x")); !errors.Is(err, apperr.ErrInvalidPath) {
			t.Errorf("Write(%q) err = %v, want ErrInvalidPath", p, err)
		}
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := tempScripts(t)
	_ = s.Write("atomic.md", []byte("original"))
	if err := s.Write("atomic.md", []byte("updated")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("atomic.md")
	if string(got) != "updated" {
		t.Errorf("content = %q, want updated", got)
	}
	matches, _ := filepath.Glob(filepath.Join(s.Root(), ".reelmd-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFS_Errors(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for non-existent dir")
	}
	f := filepath.Join(t.TempDir(), "file")
	_ = os.WriteFile(f, []byte("x"), 0o644)
	if _, err := NewFS(f); err == nil {
		t.Error("expected error when root is a file")
	}
}

func TestIsScript(t *testing.T) {
	cases := map[string]bool{"a.md": true, "b.REEL": true, "c.txt": false, "md": false}
	for name, want := range cases {
		if got := IsScript(name); got != want {
			t.Errorf("IsScript(%q) = %v, want %v", name, got, want)
		}
	}
}
