package scriptservice

import (
	"context"
	"errors"
	"testing"

	"github.com/starford/reelmd/internal/apperr"
	"github.com/starford/reelmd/internal/storage"
	"github.com/starford/reelmd/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	_, store := testutil.TestScripts(t)
	return NewService(store, testutil.TestDB(t))
}

const demo = "!scene\n!chapter \"Intro\"\n!text\nHello\n---\n!scene\n!duration 4\n!transition bogus"

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateScript(ctx, "demo.md", []byte(demo))
	if err != nil {
		t.Fatalf("CreateScript: %v", err)
	}
	if created.Title != "Intro" || len(created.Scenes) != 2 || created.Timeline.TotalDuration != 7 {
		t.Errorf("created = %+v", created)
	}
	if created.Diagnostics.Valid || len(created.Diagnostics.Errors) != 1 {
		t.Errorf("diagnostics = %+v", created.Diagnostics)
	}

	got, err := svc.GetScript(ctx, "demo.md")
	if err != nil {
		t.Fatalf("GetScript: %v", err)
	}
	if got.Checksum != storage.Checksum([]byte(demo)) {
		t.Errorf("checksum = %q", got.Checksum)
	}

	if _, err := svc.CreateScript(ctx, "demo.md", []byte("!scene")); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("duplicate create err = %v, want ErrAlreadyExists", err)
	}
	if _, err := svc.CreateScript(ctx, "demo.txt", []byte("!scene")); !errors.Is(err, apperr.ErrInvalidPath) {
		t.Errorf("bad extension err = %v, want ErrInvalidPath", err)
	}
}

func TestGetMissing(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.GetScript(context.Background(), "nope.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateWithIfMatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	orig, _ := svc.CreateScript(ctx, "u.md", []byte("!scene"))

	if _, err := svc.UpdateScript(ctx, "u.md", []byte("!scene\n!scene"), "stale"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	updated, err := svc.UpdateScript(ctx, "u.md", []byte("!scene\n!scene"), orig.Checksum)
	if err != nil {
		t.Fatalf("UpdateScript: %v", err)
	}
	if len(updated.Scenes) != 2 {
		t.Errorf("scenes = %d, want 2", len(updated.Scenes))
	}
	if _, err := svc.UpdateScript(ctx, "missing.md", []byte("!scene"), ""); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListMoveDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, _ = svc.CreateScript(ctx, "a.md", []byte(demo))
	_, _ = svc.CreateScript(ctx, "b.md", []byte("!scene"))

	items, total, err := svc.ListScripts(ctx, 10, 0, "")
	if err != nil {
		t.Fatalf("ListScripts: %v", err)
	}
	if total != 2 || items[0].Path != "a.md" || len(items[0].Chapters) != 1 || items[0].Errors != 1 {
		t.Errorf("items = %+v total = %d", items, total)
	}

	moved, err := svc.MoveScript(ctx, "b.md", "archive/b.md")
	if err != nil {
		t.Fatalf("MoveScript: %v", err)
	}
	if moved.Path != "archive/b.md" {
		t.Errorf("moved path = %q", moved.Path)
	}
	_, total, _ = svc.ListScripts(ctx, 10, 0, "")
	if total != 2 {
		t.Errorf("total after move = %d, want 2", total)
	}

	if err := svc.DeleteScript(ctx, "a.md"); err != nil {
		t.Fatalf("DeleteScript: %v", err)
	}
	if err := svc.DeleteScript(ctx, "a.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
	results, _ := svc.Search(ctx, "Intro", 10)
	if len(results) != 0 {
		t.Errorf("search after delete = %+v", results)
	}
}
